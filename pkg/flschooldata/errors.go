package flschooldata

import (
	"fmt"
	"strings"

	"github.com/flschooldata/flschooldata-go/pkg/flschooldata/bridge"
)

// ErrRscriptNotFound indicates no Rscript executable could be located.
var ErrRscriptNotFound = bridge.ErrRscriptNotFound

// UpstreamError represents a failure in the R bridge or the flschooldata
// package itself. The failure is reported as-is: no retry, no recovery.
type UpstreamError struct {
	// Op is the upstream function that failed, e.g. "fetch_enr".
	Op string
	// Stderr is whatever R wrote to stderr before failing.
	Stderr string
	Err    error
}

func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("flschooldata: %s: %v", e.Op, e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError creates a new UpstreamError.
func NewUpstreamError(op string, stderr []byte, err error) *UpstreamError {
	return &UpstreamError{
		Op:     op,
		Stderr: string(stderr),
		Err:    err,
	}
}
