package git_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/diffdoc-cli/diffdoc/internal/git"
	"github.com/diffdoc-cli/diffdoc/internal/git/gittest"
)

func TestDiffNameStatusAndNumStat(t *testing.T) {
	repo := gittest.NewTempRepo(t)
	ctx := context.Background()

	base, err := repo.Git(ctx, "rev-parse", "HEAD")
	require.NoError(t, err)

	gittest.CommitFile(t, repo, "src/app.go", []byte("package app\n"))
	gittest.CommitFile(t, repo, "README.md", []byte("# Hello World\n\nMore text.\n"))

	ns, err := repo.DiffNameStatus(ctx, base, "HEAD")
	require.NoError(t, err)
	require.Equal(t, []string{"src/app.go"}, ns.Added)
	require.Equal(t, []string{"README.md"}, ns.Modified)
	require.Empty(t, ns.Deleted)
	require.Empty(t, ns.Renamed)

	stats, err := repo.DiffNumStat(ctx, base, "HEAD")
	require.NoError(t, err)
	require.Equal(t, git.DiffStat{Additions: 1, Deletions: 0}, stats["src/app.go"])
	require.Equal(t, git.DiffStat{Additions: 2, Deletions: 0}, stats["README.md"])
}

func TestDiffNameStatusDeleted(t *testing.T) {
	repo := gittest.NewTempRepo(t)
	ctx := context.Background()

	gittest.CommitFile(t, repo, "doomed.txt", []byte("short-lived\n"))
	base, err := repo.Git(ctx, "rev-parse", "HEAD")
	require.NoError(t, err)

	gittest.RemoveFile(t, repo, "doomed.txt")

	ns, err := repo.DiffNameStatus(ctx, base, "HEAD")
	require.NoError(t, err)
	require.Equal(t, []string{"doomed.txt"}, ns.Deleted)
}

func TestFileDiffContainsChange(t *testing.T) {
	repo := gittest.NewTempRepo(t)
	ctx := context.Background()

	base, err := repo.Git(ctx, "rev-parse", "HEAD")
	require.NoError(t, err)

	gittest.CommitFile(t, repo, "README.md", []byte("# Hello World\n\nchanged\n"))

	diff, err := repo.FileDiff(ctx, &git.FileDiffOpts{
		Base:    base,
		Feature: "HEAD",
		Path:    "README.md",
	})
	require.NoError(t, err)
	require.True(t, strings.Contains(diff, "+changed"), "diff should contain the added line")
	require.True(t, strings.HasPrefix(diff, "diff --git"), "diff should be passed through verbatim")
}

func TestDiffBadRefCarriesStderr(t *testing.T) {
	repo := gittest.NewTempRepo(t)

	_, err := repo.DiffNameStatus(context.Background(), "no-such-ref", "HEAD")
	require.Error(t, err)
	stderr, ok := git.ExitStderr(err)
	require.True(t, ok, "error should carry the backend's stderr")
	require.NotEmpty(t, stderr)
}
