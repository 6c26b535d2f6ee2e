package gittest

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/diffdoc-cli/diffdoc/internal/git"
)

func init() {
	logrus.SetLevel(logrus.DebugLevel)
}

// NewTempRepo initializes a new git repository with reasonable defaults and
// an initial commit on main.
func NewTempRepo(t *testing.T) *git.Repo {
	dir := filepath.Join(t.TempDir(), "repo")
	require.NoError(t, os.MkdirAll(dir, 0755))

	init := exec.Command("git", "init", "--initial-branch=main")
	init.Dir = dir
	require.NoError(t, init.Run(), "failed to initialize git repository")

	repo, err := git.OpenRepo(dir)
	require.NoError(t, err, "failed to open repo")

	ctx := context.Background()
	settings := map[string]string{
		"user.name":  "diffdoc-test",
		"user.email": "diffdoc-test@nonexistant",
	}
	for k, v := range settings {
		_, err = repo.Git(ctx, "config", k, v)
		require.NoErrorf(t, err, "failed to set config %s=%s", k, v)
	}

	err = os.WriteFile(filepath.Join(dir, "README.md"), []byte("# Hello World\n"), 0644)
	require.NoError(t, err, "failed to write README.md")

	_, err = repo.Git(ctx, "add", "README.md")
	require.NoError(t, err, "failed to stage README.md")

	_, err = repo.Git(ctx, "commit", "-m", "Initial commit")
	require.NoError(t, err, "failed to create initial commit")

	return repo
}
