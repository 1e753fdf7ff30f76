package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize/english"
	"github.com/jmcampanini/authorcheck/internal/authorsfile"
	"github.com/jmcampanini/authorcheck/internal/check"
	"github.com/jmcampanini/authorcheck/internal/committers"
	"github.com/jmcampanini/authorcheck/internal/config"
	"github.com/jmcampanini/authorcheck/internal/github"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [directory]",
	Short: "Check commit authors against the AUTHORS file",
	Long: `Check compares the commit authors of a repository with the names listed in
its AUTHORS file and prints the names that are missing, one per line.

Branch mode (the default) runs "git log" in the directory and reports commit
authors that are not listed in AUTHORS.

Pull request mode fetches the pull request from the GitHub API, clones its
source repository into ../pr-repo and reports AUTHORS entries that have no
commits there. It is enabled with --pull-request, or automatically when the
pull request number variable (TRAVIS_PULL_REQUEST by default) is set to
something other than "false".

The command exits non-zero when any name is missing.

Example:
  authorcheck check
  authorcheck check --pull-request --repo-slug org/project --pr-number 42 path/to/repo`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	addCheckFlags(checkCmd)
	rootCmd.AddCommand(checkCmd)
}

func addCheckFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("pull-request", false, "Check a pull request instead of the current branch")
	cmd.Flags().String("repo-slug", "", "Repository slug (owner/name) of the pull request (default from $TRAVIS_REPO_SLUG)")
	cmd.Flags().String("pr-number", "", "Pull request number (default from $TRAVIS_PULL_REQUEST)")
	cmd.Flags().Bool("table", false, "Output a formatted table")
}

func runCheck(cmd *cobra.Command, args []string) error {
	return runCheckWithDeps(cmd, args, nil, nil)
}

func runCheckWithDeps(cmd *cobra.Command, args []string, deps *commandDeps, cfg *config.Config) error {
	dir := directoryArg(args)

	env, err := initCommandEnv(dir, deps, cfg)
	if err != nil {
		return err
	}

	source := resolvePullRequestSource(cmd, env)
	mode := committers.ModeFor(resolvePullRequestMode(cmd, env))

	lister := committers.NewLister(env.gitClient, env.ghClient, source)
	checker := check.NewChecker(lister, authorsfile.NewReader(env.cfg.Authors.FileName))

	missing, err := checker.Check(commandContext(cmd), mode == committers.ModePullRequest, dir)
	if err != nil {
		return fmt.Errorf("author check failed: %w", err)
	}

	if pr, ok := lister.Checked(); ok {
		if _, err := fmt.Fprintln(cmd.ErrOrStderr(), pullRequestSummary(pr)); err != nil {
			return err
		}
	}

	if tableFlag(cmd) {
		err = outputMissingTable(cmd, missing, mode)
	} else {
		err = outputMissingPlain(cmd, missing)
	}
	if err != nil {
		return err
	}

	if len(missing) > 0 {
		return errors.New(missingSummary(len(missing), mode, env.cfg.Authors.FileName))
	}

	_, err = fmt.Fprintln(cmd.ErrOrStderr(), passedSummary(mode, env.cfg.Authors.FileName))
	return err
}

// resolvePullRequestSource combines flags with the CI environment variables named in config.
// Flags win when set.
func resolvePullRequestSource(cmd *cobra.Command, env *commandEnv) committers.PullRequestSource {
	source := committers.PullRequestSource{
		RepoSlug: env.getenv(env.cfg.PR.SlugEnv),
		Number:   env.getenv(env.cfg.PR.NumberEnv),
		CloneDir: env.cfg.PR.CloneDir,
	}
	if f := cmd.Flags().Lookup("repo-slug"); f != nil && f.Changed {
		source.RepoSlug = f.Value.String()
	}
	if f := cmd.Flags().Lookup("pr-number"); f != nil && f.Changed {
		source.Number = f.Value.String()
	}
	return source
}

// resolvePullRequestMode uses --pull-request when given, otherwise detects a
// pull request build from the number variable. Travis CI sets it to "false"
// for push builds.
func resolvePullRequestMode(cmd *cobra.Command, env *commandEnv) bool {
	if f := cmd.Flags().Lookup("pull-request"); f != nil && f.Changed {
		return f.Value.String() == "true"
	}
	number := env.getenv(env.cfg.PR.NumberEnv)
	return number != "" && number != "false"
}

// tableFlag reports whether --table was given.
func tableFlag(cmd *cobra.Command) bool {
	if f := cmd.Flags().Lookup("table"); f != nil {
		return f.Value.String() == "true"
	}
	return false
}

// outputMissingPlain prints one missing name per line.
func outputMissingPlain(cmd *cobra.Command, missing []string) error {
	for _, name := range missing {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
			return err
		}
	}
	return nil
}

// outputMissingTable renders the missing names as a lipgloss table.
func outputMissingTable(cmd *cobra.Command, missing []string, mode committers.Mode) error {
	if len(missing) == 0 {
		return nil
	}

	purple := lipgloss.Color("99")
	gray := lipgloss.Color("245")
	lightGray := lipgloss.Color("241")

	headerStyle := lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	oddRowStyle := cellStyle.Foreground(gray)
	evenRowStyle := cellStyle.Foreground(lightGray)

	problem := "not in AUTHORS"
	if mode == committers.ModePullRequest {
		problem = "no commits on pull request"
	}

	rows := make([][]string, len(missing))
	for i, name := range missing {
		rows[i] = []string{fmt.Sprintf("%d", i+1), name, problem}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers("#", "Author", "Problem").
		Rows(rows...)

	_, err := fmt.Fprintln(cmd.OutOrStdout(), t)
	return err
}

// pullRequestSummary names the pull request whose commits were checked.
func pullRequestSummary(pr github.PullRequest) string {
	if pr.IsCrossRepository() {
		return fmt.Sprintf("Checked pull request #%d from %s:%s", pr.Number, pr.HeadRepo, pr.HeadRef)
	}
	return fmt.Sprintf("Checked pull request #%d from branch %s", pr.Number, pr.HeadRef)
}

// missingSummary describes a failed check, e.g. "2 commit authors missing from AUTHORS".
func missingSummary(count int, mode committers.Mode, fileName string) string {
	if mode == committers.ModePullRequest {
		return fmt.Sprintf("%s without commits on the pull request", english.Plural(count, fileName+" entry", fileName+" entries"))
	}
	return fmt.Sprintf("%s missing from %s", english.Plural(count, "commit author", ""), fileName)
}

// passedSummary describes a successful check.
func passedSummary(mode committers.Mode, fileName string) string {
	if mode == committers.ModePullRequest {
		return fmt.Sprintf("All %s entries have commits on the pull request", fileName)
	}
	return fmt.Sprintf("All commit authors are listed in %s", fileName)
}
