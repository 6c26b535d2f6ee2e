package git

import (
	"context"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/diffdoc-cli/diffdoc/internal/utils/stringutils"
)

// DefaultDiffContext is the number of unified-diff context lines requested
// from the backend. Wider than git's default of 3 so that reviewers see the
// surrounding code in the generated document.
const DefaultDiffContext = 10

type Rename struct {
	OldPath string
	NewPath string
}

// NameStatus holds the paths touched between two refs, bucketed by the
// status letter reported by `git diff --name-status`.
type NameStatus struct {
	Added    []string
	Modified []string
	Deleted  []string
	Renamed  []Rename
}

// DiffNameStatus lists the files that changed between base and feature.
func (r *Repo) DiffNameStatus(ctx context.Context, base string, feature string) (*NameStatus, error) {
	out, err := r.Git(ctx, "diff", "--name-status", base+".."+feature)
	if err != nil {
		return nil, err
	}
	return parseNameStatus(out), nil
}

func parseNameStatus(out string) *NameStatus {
	ns := &NameStatus{}
	for _, line := range stringutils.SplitLines(out) {
		if line == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		status := parts[0]
		files := parts[1:]
		if len(files) == 0 {
			continue
		}
		switch {
		case strings.HasPrefix(status, "A"):
			ns.Added = append(ns.Added, files[0])
		case strings.HasPrefix(status, "M"):
			ns.Modified = append(ns.Modified, files[0])
		case strings.HasPrefix(status, "D"):
			ns.Deleted = append(ns.Deleted, files[0])
		case strings.HasPrefix(status, "R"):
			// Renames are reported as R<score>\t<old>\t<new>.
			if len(files) >= 2 {
				ns.Renamed = append(ns.Renamed, Rename{OldPath: files[0], NewPath: files[1]})
			}
		default:
			logrus.WithField("status", status).Debugf("skipping unhandled name-status entry: %s", line)
		}
	}
	return ns
}

type DiffStat struct {
	Additions int
	Deletions int
}

// DiffNumStat returns per-file added/deleted line counts between base and
// feature, keyed by path. Binary files (reported by git as "-") count as
// zero.
func (r *Repo) DiffNumStat(ctx context.Context, base string, feature string) (map[string]DiffStat, error) {
	out, err := r.Git(ctx, "diff", "--numstat", base+".."+feature)
	if err != nil {
		return nil, err
	}
	return parseNumStat(out), nil
}

func parseNumStat(out string) map[string]DiffStat {
	stats := map[string]DiffStat{}
	for _, line := range stringutils.SplitLines(out) {
		if line == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) != 3 {
			continue
		}
		stats[parts[2]] = DiffStat{
			Additions: parseStatCount(parts[0]),
			Deletions: parseStatCount(parts[1]),
		}
	}
	return stats
}

func parseStatCount(s string) int {
	if s == "-" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

type FileDiffOpts struct {
	Base    string
	Feature string
	Path    string
	// Number of unified-diff context lines. Zero means DefaultDiffContext.
	Context int
}

// FileDiff returns the unified diff for a single file between two refs. The
// diff text is opaque to this tool and passed through verbatim.
func (r *Repo) FileDiff(ctx context.Context, opts *FileDiffOpts) (string, error) {
	contextLines := opts.Context
	if contextLines == 0 {
		contextLines = DefaultDiffContext
	}
	return r.Git(ctx,
		"diff", "--unified="+strconv.Itoa(contextLines),
		opts.Base+".."+opts.Feature, "--", opts.Path,
	)
}
