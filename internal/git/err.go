package git

import (
	"os/exec"
	"strings"

	"emperror.dev/errors"

	"github.com/diffdoc-cli/diffdoc/internal/utils/errutils"
)

// IsNotInstalled reports whether err indicates that the git executable could
// not be found on the PATH (as opposed to git itself failing).
func IsNotInstalled(err error) bool {
	return errors.Is(err, exec.ErrNotFound)
}

// ExitStderr returns the stderr output captured from a failed git invocation,
// if err (or anything it wraps) carries one.
func ExitStderr(err error) (string, bool) {
	exitErr, ok := errutils.As[*exec.ExitError](err)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(string(exitErr.Stderr)), true
}

func StderrMatches(err error, target string) bool {
	stderr, ok := ExitStderr(err)
	return ok && strings.Contains(stderr, target)
}
