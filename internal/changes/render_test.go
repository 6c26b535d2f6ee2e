package changes_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/diffdoc-cli/diffdoc/internal/changes"
)

func TestRenderTreeScenario(t *testing.T) {
	all := map[string]*changes.FileChange{
		"src/a.py":       {Path: "src/a.py", Status: changes.StatusModified, Additions: 5, Deletions: 2},
		"src/b.py":       {Path: "src/b.py", Status: changes.StatusAdded, Additions: 10},
		"docs/readme.md": {Path: "docs/readme.md", Status: changes.StatusDeleted},
	}
	lines := changes.RenderTree(changes.BuildTree(all))

	require.Equal(t, []string{
		"├── docs/ (Modified, +0, -0)",
		"│   └── `readme.md` (Deleted, +0, -0)",
		"└── src/ (Modified, +15, -2)",
		"    ├── `a.py` (Modified, +5, -2)",
		"    └── `b.py` (Added, +10, -0)",
	}, lines)
}

func TestRenderConnectorsPerDepth(t *testing.T) {
	// Three siblings at the top level: first two get the branch connector,
	// the last gets the corner. Same rule applies independently inside dirs.
	all := map[string]*changes.FileChange{
		"a.txt":     {Path: "a.txt", Status: changes.StatusModified, Additions: 1},
		"b.txt":     {Path: "b.txt", Status: changes.StatusModified, Additions: 2},
		"c/one.txt": {Path: "c/one.txt", Status: changes.StatusModified, Additions: 1},
		"c/two.txt": {Path: "c/two.txt", Status: changes.StatusModified, Additions: 2},
	}
	lines := changes.RenderTree(changes.BuildTree(all))

	require.Equal(t, []string{
		"├── `a.txt` (Modified, +1, -0)",
		"├── `b.txt` (Modified, +2, -0)",
		"└── c/ (Modified, +3, -0)",
		"    ├── `one.txt` (Modified, +1, -0)",
		"    └── `two.txt` (Modified, +2, -0)",
	}, lines)
}

func TestRenderIndentTracksAncestorPosition(t *testing.T) {
	// A non-last directory's descendants are prefixed with a continuing
	// vertical bar, not blanks.
	all := map[string]*changes.FileChange{
		"a/deep/file.go": {Path: "a/deep/file.go", Status: changes.StatusModified, Additions: 1},
		"z.go":           {Path: "z.go", Status: changes.StatusModified, Additions: 5},
	}
	lines := changes.RenderTree(changes.BuildTree(all))

	require.Equal(t, []string{
		"├── a/ (Modified, +1, -0)",
		"│   └── deep/ (Modified, +1, -0)",
		"│       └── `file.go` (Modified, +1, -0)",
		"└── `z.go` (Modified, +5, -0)",
	}, lines)
}

func TestRenderRenamedSuppressesCounts(t *testing.T) {
	all := map[string]*changes.FileChange{
		"new/name.go": {Path: "new/name.go", Status: changes.StatusRenamed, OldPath: "old/name.go", Additions: 40, Deletions: 2},
	}
	lines := changes.RenderTree(changes.BuildTree(all))

	require.Equal(t, []string{
		"└── new/ (Modified, +40, -2)",
		"    └── `name.go` -> `old/name.go` (Renamed)",
	}, lines)
}

func TestRenderDeletedShowsZeroCounts(t *testing.T) {
	all := map[string]*changes.FileChange{
		"gone.txt": {Path: "gone.txt", Status: changes.StatusDeleted},
	}
	lines := changes.RenderTree(changes.BuildTree(all))
	require.Equal(t, []string{"└── `gone.txt` (Deleted, +0, -0)"}, lines)
}

func TestRenderIsDeterministic(t *testing.T) {
	all := map[string]*changes.FileChange{
		"src/a.go": {Path: "src/a.go", Status: changes.StatusModified, Additions: 3, Deletions: 1},
		"src/b.go": {Path: "src/b.go", Status: changes.StatusAdded, Additions: 3, Deletions: 1},
		"c.go":     {Path: "c.go", Status: changes.StatusModified, Additions: 1},
	}
	tree := changes.BuildTree(all)
	first := changes.RenderTree(tree)
	second := changes.RenderTree(tree)
	require.Equal(t, first, second)
}

func TestRenderEmptyTree(t *testing.T) {
	lines := changes.RenderTree(changes.BuildTree(map[string]*changes.FileChange{}))
	require.Empty(t, lines)
}
