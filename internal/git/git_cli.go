package git

import (
	"context"
	"strings"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/jmcampanini/authorcheck/internal/authorset"
	"github.com/jmcampanini/authorcheck/internal/process"
)

// authorFormat is the pretty format printing one author name (respecting .mailmap) per commit.
const authorFormat = "--format=%aN"

// GitCli provides git operations by executing the git CLI through a process.Runner.
type GitCli struct {
	log     *clog.Logger
	runner  process.Runner
	timeout time.Duration
}

var _ Git = &GitCli{}

// New creates a GitCli. A zero timeout means git commands are never cut short.
func New(runner process.Runner, timeout time.Duration) Git {
	return &GitCli{
		log:     clog.Default().WithPrefix("git"),
		runner:  runner,
		timeout: timeout,
	}
}

func (g *GitCli) executeGitCommand(ctx context.Context, dir string, args ...string) ([]byte, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	return g.runner.Run(ctx, process.Command{
		Name: "git",
		Args: args,
		Dir:  dir,
		Env:  []string{"GIT_TERMINAL_PROMPT=0"},
	})
}

func (g *GitCli) ListAuthors(ctx context.Context, dir string) ([]string, error) {
	output, err := g.executeGitCommand(ctx, dir, "log", authorFormat)
	if err != nil {
		return nil, err
	}

	authors := parseAuthorNames(output)
	g.log.Debug("Listed commit authors", "dir", dir, "authors", len(authors))
	return authors, nil
}

func (g *GitCli) Clone(ctx context.Context, url, parentDir, name string) error {
	g.log.Debug("Cloning repository", "url", url, "parentDir", parentDir, "name", name)
	_, err := g.executeGitCommand(ctx, parentDir, "clone", url, name)
	return err
}

// parseAuthorNames splits `git log --format=%aN` output into unique names in first-seen order.
// Lines are kept verbatim apart from dropping those that are empty or whitespace-only.
func parseAuthorNames(output []byte) []string {
	var names authorset.Set
	for _, line := range strings.Split(string(output), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		names.Add(line)
	}
	return names.Names()
}
