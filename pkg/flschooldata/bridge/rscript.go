package bridge

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
)

// ErrRscriptNotFound indicates no Rscript executable could be located.
var ErrRscriptNotFound = errors.New("Rscript executable not found")

// Runner executes R scripts through the Rscript interpreter. Calls are
// synchronous and blocking; the zero value resolves Rscript from PATH.
type Runner struct {
	// Path is the Rscript executable. If empty, PATH is searched.
	Path string
}

// Resolve returns the Rscript executable the runner will use.
func (r *Runner) Resolve() (string, error) {
	if r.Path != "" {
		return r.Path, nil
	}
	path, err := exec.LookPath("Rscript")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRscriptNotFound, err)
	}
	return path, nil
}

// Exec runs the given R script, feeding stdin to the process when non-nil,
// and returns captured stdout and stderr. A non-zero exit or a failure to
// start the process is reported through err; stderr holds whatever R wrote
// before failing.
func (r *Runner) Exec(script string, stdin []byte) (stdout, stderr []byte, err error) {
	path, err := r.Resolve()
	if err != nil {
		return nil, nil, err
	}

	cmd := exec.Command(path, "--vanilla", "-e", script)
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return outBuf.Bytes(), errBuf.Bytes(), err
	}
	return outBuf.Bytes(), errBuf.Bytes(), nil
}
