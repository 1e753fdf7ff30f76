package github

import (
	"context"
	"strings"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/jmcampanini/authorcheck/internal/process"
)

// GitHubCli fetches pull requests by executing `gh api`.
// Authentication and host selection are left to gh.
type GitHubCli struct {
	log     *clog.Logger
	runner  process.Runner
	timeout time.Duration
}

var _ GitHub = &GitHubCli{}

// NewCli creates a GitHubCli running gh through runner. A zero timeout means none.
func NewCli(runner process.Runner, timeout time.Duration) GitHub {
	return &GitHubCli{
		log:     clog.Default().WithPrefix("github"),
		runner:  runner,
		timeout: timeout,
	}
}

func (g *GitHubCli) executeGhCommand(ctx context.Context, args ...string) ([]byte, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	return g.runner.Run(ctx, process.Command{
		Name: "gh",
		Args: args,
		Env:  []string{"GH_PROMPT_DISABLED=1"},
	})
}

func (g *GitHubCli) GetPullRequest(ctx context.Context, slug, number string) (PullRequest, error) {
	path := pullRequestPath(slug, number)

	output, err := g.executeGhCommand(ctx, "api", strings.TrimPrefix(path, "/"))
	if err != nil {
		g.log.Warn("gh api failed", "path", path, "error", err)
		return PullRequest{}, &APIError{Path: path, Err: err}
	}

	return decodePullRequest(path, output)
}
