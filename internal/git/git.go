package git

import (
	"context"
	"os/exec"
	"path"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/sirupsen/logrus"
)

type Repo struct {
	repoDir string
	log     logrus.FieldLogger
}

func OpenRepo(repoDir string) (*Repo, error) {
	r := &Repo{
		repoDir,
		logrus.WithFields(logrus.Fields{"repo": path.Base(repoDir)}),
	}

	return r, nil
}

func (r *Repo) Dir() string {
	return r.repoDir
}

func (r *Repo) GitDir() string {
	return path.Join(r.repoDir, ".git")
}

// Git runs a git command in the repository directory and returns its trimmed
// stdout. On failure the returned error wraps the underlying exec error so
// that the backend's own diagnostic output remains reachable via ExitStderr.
func (r *Repo) Git(ctx context.Context, args ...string) (string, error) {
	startTime := time.Now()
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.repoDir
	out, err := cmd.Output()
	log := r.log.WithField("duration", time.Since(startTime))
	if err != nil {
		stderr := "<no output>"
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			stderr = string(exitError.Stderr)
		}
		log.Debugf("git %s failed: %s: %s", args, err, stderr)
		return strings.TrimSpace(string(out)), errors.Wrapf(err, "git %s", args[0])
	}

	// trim trailing newline
	log.Debugf("git %s", args)
	return strings.TrimSpace(string(out)), nil
}
