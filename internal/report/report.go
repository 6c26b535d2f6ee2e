// Package report assembles the final Markdown change document from a
// collected change set: a summary tree block followed by one fenced diff
// section per changed-content file.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/diffdoc-cli/diffdoc/internal/changes"
	"github.com/diffdoc-cli/diffdoc/internal/git"
)

// Differ fetches the unified diff for a single file. *git.Repo satisfies
// this; tests substitute a fake to exercise per-file failure handling.
type Differ interface {
	FileDiff(ctx context.Context, opts *git.FileDiffOpts) (string, error)
}

type Options struct {
	BaseRef    string
	FeatureRef string
	// GeneratedAt is stamped into the document header. It is an explicit
	// input so the assembler has no ambient clock state.
	GeneratedAt time.Time
	// Context is the number of unified-diff context lines requested per
	// file. Zero means git.DefaultDiffContext.
	Context int
}

// Generate builds the full Markdown document. Failures fetching an
// individual file's diff degrade to an inline error note in that file's
// section; they never abort the rest of the report.
func Generate(ctx context.Context, differ Differ, all map[string]*changes.FileChange, opts Options) string {
	var md []string
	md = append(md, fmt.Sprintf("# Code Changes from `%s` to `%s`\n", opts.BaseRef, opts.FeatureRef))
	md = append(md, fmt.Sprintf("> _Generated on: %s_\n", opts.GeneratedAt.Format("2006-01-02 15:04:05 MST")))
	md = append(md, "This document outlines the code modifications, additions, and deletions\n")

	md = append(md, "## Summary of Changes\n")
	if len(all) > 0 {
		tree := changes.BuildTree(all)
		md = append(md, "```")
		md = append(md, changes.RenderTree(tree)...)
		md = append(md, "```\n")
	} else {
		md = append(md, "No changes detected.\n")
	}

	md = append(md, "---\n")
	md = append(md, "## Detailed File Changes\n")

	paths := changes.ContentPaths(all)
	if len(paths) == 0 {
		md = append(md, "No files with content changes to display.")
	} else {
		for i, path := range paths {
			logrus.WithField("path", path).Infof("generating diff (%d/%d)", i+1, len(paths))
			diff, err := differ.FileDiff(ctx, &git.FileDiffOpts{
				Base:    opts.BaseRef,
				Feature: opts.FeatureRef,
				Path:    path,
				Context: opts.Context,
			})
			md = append(md, fmt.Sprintf("### `%s`\n", path))
			if err != nil {
				logrus.WithError(err).WithField("path", path).Warn("failed to generate file diff")
				md = append(md, fmt.Sprintf("Could not generate diff. Error: %s\n", err))
				continue
			}
			md = append(md, "```diff")
			md = append(md, strings.TrimSpace(diff))
			md = append(md, "```\n")
		}
	}

	return strings.Join(md, "\n")
}
