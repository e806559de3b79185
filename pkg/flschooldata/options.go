// Package flschooldata provides Go bindings for the flschooldata R
// package's enrollment-fetching functions.
package flschooldata

import "github.com/flschooldata/flschooldata-go/pkg/flschooldata/bridge"

// Options configures how the R bridge is invoked.
type Options struct {
	// RscriptPath overrides the Rscript executable used to reach R.
	// If empty, PATH is searched.
	RscriptPath string
	// Quiet specifies whether R package startup messages are suppressed.
	// If nil, defaults to true.
	Quiet *bool
}

// DefaultOptions returns default bridge options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldQuiet returns whether R startup messages are suppressed.
func (o Options) ShouldQuiet() bool {
	if o.Quiet != nil {
		return *o.Quiet
	}
	return true
}

func (o Options) runner() *bridge.Runner {
	return &bridge.Runner{Path: o.RscriptPath}
}
