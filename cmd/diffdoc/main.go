package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/diffdoc-cli/diffdoc/internal/changes"
	"github.com/diffdoc-cli/diffdoc/internal/config"
	"github.com/diffdoc-cli/diffdoc/internal/git"
	"github.com/diffdoc-cli/diffdoc/internal/report"
	"github.com/diffdoc-cli/diffdoc/internal/utils/colors"
)

var rootFlags struct {
	Debug     bool
	Directory string
	Output    string
}

var rootCmd = &cobra.Command{
	Use:   "diffdoc <base-ref> <feature-ref>",
	Short: "Generate a Markdown change report between two git refs",
	Long: "Generate a Markdown document describing the diff between two branches or " +
		"commits: a summary tree of touched paths with per-file line counts, followed " +
		"by the unified diff of every changed file.",
	Args: cobra.ExactArgs(2),

	// Don't automatically print errors or usage information (we handle that ourselves).
	SilenceErrors: true,
	SilenceUsage:  true,

	// Don't show "completion" command in help menu
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if rootFlags.Debug {
			logrus.SetLevel(logrus.DebugLevel)
			logrus.WithField("version", config.Version).Debug("enabled debug logging")
		}

		var configDirs []string
		repo, err := getRepo()
		// If we weren't able to load the Git repo, that probably just means the
		// command isn't being run from inside a repo. That's fine, we just
		// don't need to bother reading repo-local config.
		if err != nil {
			logrus.WithError(err).Debug("unable to load Git repo (probably not inside a repo)")
		} else {
			configDirs = append(configDirs, repo.GitDir()+"/diffdoc")
		}

		didLoadConfig, err := config.Load(configDirs)
		if err != nil {
			return errors.Wrap(err, "failed to load configuration")
		}
		if didLoadConfig {
			logrus.Debug("loaded configuration")
		} else {
			logrus.Debug("no configuration found")
		}
		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		baseRef, featureRef := args[0], args[1]

		repo, err := getRepo()
		if err != nil {
			return err
		}

		logrus.Info("gathering file changes")
		all, err := changes.Collect(ctx, repo, baseRef, featureRef)
		if err != nil {
			return err
		}

		doc := report.Generate(ctx, repo, all, report.Options{
			BaseRef:     baseRef,
			FeatureRef:  featureRef,
			GeneratedAt: time.Now(),
			Context:     config.Doc.Output.Context,
		})

		outputPath := rootFlags.Output
		if outputPath == "" {
			outputPath = config.Doc.Output.Filename
		}
		if err := os.WriteFile(outputPath, []byte(doc), 0644); err != nil {
			return errors.Wrapf(err, "failed to write report to %q", outputPath)
		}

		_, _ = fmt.Fprintln(os.Stderr, colors.Success("Successfully generated documentation at: "+outputPath))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(
		&rootFlags.Debug, "debug", false,
		"enable verbose debug logging",
	)
	rootCmd.PersistentFlags().StringVarP(
		&rootFlags.Directory, "repo", "C", "",
		"directory to use for git repository",
	)
	rootCmd.Flags().StringVarP(
		&rootFlags.Output, "output", "o", "",
		"output file for the generated report (default from config, else CHANGES.md)",
	)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if git.IsNotInstalled(err) {
			_, _ = fmt.Fprintln(os.Stderr, colors.Failure("error: git not found."),
				colors.Troubleshooting("Is git installed and in your PATH?"))
			os.Exit(1)
		}

		// Surface the backend's own diagnostic output when we have it (e.g.,
		// "fatal: bad revision ...").
		if stderr, ok := git.ExitStderr(err); ok {
			_, _ = fmt.Fprintf(os.Stderr, "error: %s\n%s\n", err, indent(stderr, "\t"))
		} else if rootFlags.Debug {
			// In debug mode, show more detailed information about the error
			// (including the stack trace).
			stackTrace := fmt.Sprintf("%+v", err)
			_, _ = fmt.Fprintf(os.Stderr, "error: %s\n%s\n", err, indent(stackTrace, "\t"))
		} else {
			_, _ = fmt.Fprintf(os.Stderr, "error: %s\n", err)
		}
		os.Exit(1)
	}
}

func indent(s string, prefix string) string {
	// why is this not in the stdlib????
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}

var cachedRepo *git.Repo

func getRepo() (*git.Repo, error) {
	if cachedRepo == nil {
		cmd := exec.Command("git", "rev-parse", "--show-toplevel")
		if rootFlags.Directory != "" {
			cmd.Dir = rootFlags.Directory
		}
		toplevel, err := cmd.Output()
		if err != nil {
			return nil, errors.Wrap(err, "failed to determine repo toplevel")
		}
		cachedRepo, err = git.OpenRepo(strings.TrimSpace(string(toplevel)))
		if err != nil {
			return nil, errors.Wrap(err, "failed to open git repo")
		}
	}
	return cachedRepo, nil
}
