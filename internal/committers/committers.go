// Package committers lists the names of the people who authored commits,
// either on the local branch or on a pull request's source repository.
package committers

import (
	"context"
	"errors"
	"path/filepath"

	clog "github.com/charmbracelet/log"
	"github.com/jmcampanini/authorcheck/internal/git"
	"github.com/jmcampanini/authorcheck/internal/github"
)

// DefaultCloneDir is the name of the sibling directory pull requests are cloned into.
const DefaultCloneDir = "pr-repo"

type Mode int

const (
	ModeBranch Mode = iota
	ModePullRequest
)

// ModeFor maps the pull-request flag to a Mode.
func ModeFor(isPullRequest bool) Mode {
	if isPullRequest {
		return ModePullRequest
	}
	return ModeBranch
}

func (m Mode) String() string {
	switch m {
	case ModeBranch:
		return "branch"
	case ModePullRequest:
		return "pull-request"
	default:
		return "unknown"
	}
}

var errNoHostingClient = errors.New("pull request mode requires a hosting API client")

// PullRequestSource identifies the pull request whose commits are listed.
// Values are passed to the hosting API as given.
type PullRequestSource struct {
	RepoSlug string // "owner/name"
	Number   string
	CloneDir string // sibling directory name; DefaultCloneDir if empty
}

// Lister resolves commit authors in branch or pull-request mode.
type Lister struct {
	checked *github.PullRequest
	git     git.Git
	gh      github.GitHub
	log     *clog.Logger
	source  PullRequestSource
}

// NewLister creates a Lister. gh may be nil when only branch mode is used.
func NewLister(gitClient git.Git, gh github.GitHub, source PullRequestSource) *Lister {
	if source.CloneDir == "" {
		source.CloneDir = DefaultCloneDir
	}
	return &Lister{
		git:    gitClient,
		gh:     gh,
		log:    clog.Default().WithPrefix("committers"),
		source: source,
	}
}

// List returns the unique commit author names for dir in the given mode,
// in first-seen order.
func (l *Lister) List(ctx context.Context, mode Mode, dir string) ([]string, error) {
	if mode == ModePullRequest {
		return l.listPullRequest(ctx, dir)
	}
	return l.git.ListAuthors(ctx, dir)
}

// listPullRequest fetches the configured pull request, clones its source repository
// into dir/../<CloneDir> and lists the authors of that clone.
func (l *Lister) listPullRequest(ctx context.Context, dir string) ([]string, error) {
	if l.gh == nil {
		return nil, errNoHostingClient
	}

	pr, err := l.gh.GetPullRequest(ctx, l.source.RepoSlug, l.source.Number)
	if err != nil {
		return nil, err
	}
	l.checked = &pr

	parent := filepath.Join(dir, "..")
	clonePath := filepath.Join(parent, l.source.CloneDir)
	l.log.Debug("Cloning pull request source",
		"number", pr.Number,
		"headRepo", pr.HeadRepo,
		"headRef", pr.HeadRef,
		"fork", pr.IsCrossRepository(),
		"url", pr.HeadCloneURL,
		"dest", clonePath)

	if err := l.git.Clone(ctx, pr.HeadCloneURL, parent, l.source.CloneDir); err != nil {
		return nil, err
	}

	return l.git.ListAuthors(ctx, clonePath)
}

// Checked returns the pull request fetched by the last pull-request mode List, if any.
func (l *Lister) Checked() (github.PullRequest, bool) {
	if l.checked == nil {
		return github.PullRequest{}, false
	}
	return *l.checked, true
}
