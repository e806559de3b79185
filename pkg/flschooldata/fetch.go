package flschooldata

import (
	"github.com/flschooldata/flschooldata-go/pkg/flschooldata/bridge"
	"github.com/flschooldata/flschooldata-go/pkg/flschooldata/frame"
)

// Version is the binding version.
const Version = "0.1.0"

// FetchEnr fetches enrollment data for a single school year by calling
// flschooldata::fetch_enr in R. The returned frame has exactly the columns
// and rows R produced.
func FetchEnr(year int, opts Options) (*frame.Frame, error) {
	return callFrame("fetch_enr", bridge.FetchScript(year, opts.ShouldQuiet()), nil, opts)
}

// FetchEnrMulti fetches enrollment data for multiple school years by
// calling flschooldata::fetch_enr_multi in R.
func FetchEnrMulti(years []int, opts Options) (*frame.Frame, error) {
	return callFrame("fetch_enr_multi", bridge.FetchMultiScript(years, opts.ShouldQuiet()), nil, opts)
}

// TidyEnr reshapes a previously fetched frame through
// flschooldata::tidy_enr. The input frame is sent to R unchanged and is
// not mutated.
func TidyEnr(f *frame.Frame, opts Options) (*frame.Frame, error) {
	stdin, err := bridge.EncodeFrame(f)
	if err != nil {
		return nil, NewUpstreamError("tidy_enr", nil, err)
	}
	return callFrame("tidy_enr", bridge.TidyScript(opts.ShouldQuiet()), stdin, opts)
}

// AvailableYears returns the school years the upstream package can fetch,
// by calling flschooldata::get_available_years in R.
func AvailableYears(opts Options) ([]int, error) {
	stdout, stderr, err := opts.runner().Exec(bridge.YearsScript(opts.ShouldQuiet()), nil)
	if err != nil {
		return nil, NewUpstreamError("get_available_years", stderr, err)
	}
	years, err := bridge.DecodeYears(stdout)
	if err != nil {
		return nil, NewUpstreamError("get_available_years", stderr, err)
	}
	return years, nil
}

func callFrame(op, script string, stdin []byte, opts Options) (*frame.Frame, error) {
	stdout, stderr, err := opts.runner().Exec(script, stdin)
	if err != nil {
		return nil, NewUpstreamError(op, stderr, err)
	}
	f, err := bridge.DecodeFrame(stdout)
	if err != nil {
		return nil, NewUpstreamError(op, stderr, err)
	}
	return f, nil
}
