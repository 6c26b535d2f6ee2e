package changes

import (
	"context"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/diffdoc-cli/diffdoc/internal/git"
)

type Status string

const (
	StatusAdded    Status = "Added"
	StatusModified Status = "Modified"
	StatusDeleted  Status = "Deleted"
	StatusRenamed  Status = "Renamed"
)

// FileChange is the unified record for one touched path between two refs,
// joined from the backend's name-status and numstat outputs.
type FileChange struct {
	Path   string
	Status Status
	// OldPath is set iff Status is StatusRenamed.
	OldPath   string
	Additions int
	Deletions int
}

// TotalChanges is the change volume used for sorting tree siblings. Renamed
// entries keep their real churn here even though the rendered line hides the
// numbers.
func (c *FileChange) TotalChanges() int {
	return c.Additions + c.Deletions
}

// Source is the subset of the git backend needed to build the change set.
type Source interface {
	DiffNameStatus(ctx context.Context, base string, feature string) (*git.NameStatus, error)
	DiffNumStat(ctx context.Context, base string, feature string) (map[string]git.DiffStat, error)
}

// Collect queries the backend for the files changed between base and feature
// and joins the status list with the numeric stats into one record per path.
// Renamed files look up their stats under the new path; deleted files get
// zero stats because numstat does not report them; any path missing from
// numstat defaults to zero.
func Collect(ctx context.Context, src Source, base string, feature string) (map[string]*FileChange, error) {
	ns, err := src.DiffNameStatus(ctx, base, feature)
	if err != nil {
		return nil, err
	}
	stats, err := src.DiffNumStat(ctx, base, feature)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"added":    len(ns.Added),
		"modified": len(ns.Modified),
		"deleted":  len(ns.Deleted),
		"renamed":  len(ns.Renamed),
	}).Debug("collected changed files")

	all := map[string]*FileChange{}
	for _, path := range ns.Added {
		stat := stats[path]
		all[path] = &FileChange{
			Path:      path,
			Status:    StatusAdded,
			Additions: stat.Additions,
			Deletions: stat.Deletions,
		}
	}
	for _, path := range ns.Modified {
		stat := stats[path]
		all[path] = &FileChange{
			Path:      path,
			Status:    StatusModified,
			Additions: stat.Additions,
			Deletions: stat.Deletions,
		}
	}
	for _, rename := range ns.Renamed {
		stat := stats[rename.NewPath]
		all[rename.NewPath] = &FileChange{
			Path:      rename.NewPath,
			Status:    StatusRenamed,
			OldPath:   rename.OldPath,
			Additions: stat.Additions,
			Deletions: stat.Deletions,
		}
	}
	for _, path := range ns.Deleted {
		// numstat doesn't carry counts for deletions
		all[path] = &FileChange{Path: path, Status: StatusDeleted}
	}
	return all, nil
}

// ContentPaths returns the paths whose content changed (added, modified, and
// renamed files; deletions have nothing to diff), sorted lexicographically.
// This is the order of the per-file diff sections in the report.
func ContentPaths(all map[string]*FileChange) []string {
	var paths []string
	for path, change := range all {
		if change.Status == StatusDeleted {
			continue
		}
		paths = append(paths, path)
	}
	slices.Sort(paths)
	return paths
}
