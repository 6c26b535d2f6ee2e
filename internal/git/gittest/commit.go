package gittest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/diffdoc-cli/diffdoc/internal/git"
)

// CommitFile writes (or overwrites) a file, creating parent directories as
// needed, and commits it.
func CommitFile(t *testing.T, repo *git.Repo, filename string, body []byte) {
	path := filepath.Join(repo.Dir(), filename)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755),
		"failed to create parent directories for: %s", filename)
	require.NoError(t, os.WriteFile(path, body, 0644),
		"failed to write file: %s", filename)

	ctx := context.Background()
	_, err := repo.Git(ctx, "add", path)
	require.NoError(t, err, "failed to add file: %s", filename)

	msg := fmt.Sprintf("write file %s", filename)
	_, err = repo.Git(ctx, "commit", "-m", msg)
	require.NoError(t, err, "failed to commit file: %s", filename)
}

// RemoveFile deletes a tracked file and commits the deletion.
func RemoveFile(t *testing.T, repo *git.Repo, filename string) {
	ctx := context.Background()
	_, err := repo.Git(ctx, "rm", filename)
	require.NoError(t, err, "failed to git-rm file: %s", filename)

	msg := fmt.Sprintf("remove file %s", filename)
	_, err = repo.Git(ctx, "commit", "-m", msg)
	require.NoError(t, err, "failed to commit removal: %s", filename)
}
