package committers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	clog "github.com/charmbracelet/log"
	"github.com/jmcampanini/authorcheck/internal/github"
	"github.com/jmcampanini/authorcheck/internal/process"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockGit implements git.Git for testing
type mockGit struct {
	calls         []string
	cloneFn       func(url, parentDir, name string) error
	listAuthorsFn func(dir string) ([]string, error)
}

func (m *mockGit) ListAuthors(_ context.Context, dir string) ([]string, error) {
	m.calls = append(m.calls, "log "+dir)
	if m.listAuthorsFn != nil {
		return m.listAuthorsFn(dir)
	}
	return nil, nil
}

func (m *mockGit) Clone(_ context.Context, url, parentDir, name string) error {
	m.calls = append(m.calls, "clone "+url+" "+parentDir+" "+name)
	if m.cloneFn != nil {
		return m.cloneFn(url, parentDir, name)
	}
	return nil
}

// mockGitHub implements github.GitHub for testing
type mockGitHub struct {
	getPullRequestFn func(slug, number string) (github.PullRequest, error)
}

func (m *mockGitHub) GetPullRequest(_ context.Context, slug, number string) (github.PullRequest, error) {
	if m.getPullRequestFn != nil {
		return m.getPullRequestFn(slug, number)
	}
	return github.PullRequest{}, nil
}

func newTestLister(g *mockGit, gh github.GitHub, source PullRequestSource) *Lister {
	l := NewLister(g, gh, source)
	l.log = clog.New(io.Discard)
	return l
}

func TestModeFor(t *testing.T) {
	assert.Equal(t, ModePullRequest, ModeFor(true))
	assert.Equal(t, ModeBranch, ModeFor(false))
	assert.Equal(t, "pull-request", ModePullRequest.String())
	assert.Equal(t, "branch", ModeBranch.String())
	assert.Equal(t, "unknown", Mode(9).String())
}

func TestLister_List_Branch(t *testing.T) {
	g := &mockGit{listAuthorsFn: func(dir string) ([]string, error) {
		return []string{"Alice", "Bob"}, nil
	}}
	l := newTestLister(g, nil, PullRequestSource{})

	got, err := l.List(context.Background(), ModeBranch, "/work/project")

	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, got)
	assert.Equal(t, []string{"log /work/project"}, g.calls)
}

func TestLister_List_PullRequest(t *testing.T) {
	var gotSlug, gotNumber string
	gh := &mockGitHub{getPullRequestFn: func(slug, number string) (github.PullRequest, error) {
		gotSlug, gotNumber = slug, number
		return github.PullRequest{Number: 42, HeadCloneURL: "https://github.com/contrib/project.git"}, nil
	}}
	g := &mockGit{listAuthorsFn: func(dir string) ([]string, error) {
		return []string{"Carol"}, nil
	}}
	l := newTestLister(g, gh, PullRequestSource{RepoSlug: "org/project", Number: "42"})

	got, err := l.List(context.Background(), ModePullRequest, "/work/project")

	require.NoError(t, err)
	assert.Equal(t, []string{"Carol"}, got)
	assert.Equal(t, "org/project", gotSlug)
	assert.Equal(t, "42", gotNumber)
	assert.Equal(t, []string{
		"clone https://github.com/contrib/project.git " + filepath.FromSlash("/work") + " pr-repo",
		"log " + filepath.FromSlash("/work/pr-repo"),
	}, g.calls)
}

func TestLister_List_PullRequest_CustomCloneDir(t *testing.T) {
	gh := &mockGitHub{getPullRequestFn: func(slug, number string) (github.PullRequest, error) {
		return github.PullRequest{HeadCloneURL: "url"}, nil
	}}
	g := &mockGit{}
	l := newTestLister(g, gh, PullRequestSource{CloneDir: "fork"})

	_, err := l.List(context.Background(), ModePullRequest, "project")

	require.NoError(t, err)
	assert.Equal(t, []string{"clone url . fork", "log fork"}, g.calls)
}

func TestLister_List_PullRequest_APIError(t *testing.T) {
	apiErr := &github.APIError{Path: "/repos/org/project/pulls/42", StatusCode: 404, Message: "Not Found"}
	gh := &mockGitHub{getPullRequestFn: func(slug, number string) (github.PullRequest, error) {
		return github.PullRequest{}, apiErr
	}}
	g := &mockGit{}
	l := newTestLister(g, gh, PullRequestSource{RepoSlug: "org/project", Number: "42"})

	got, err := l.List(context.Background(), ModePullRequest, "/work/project")

	assert.Nil(t, got)
	assert.Same(t, apiErr, err)
	assert.Empty(t, g.calls, "no git command should run after an API failure")
}

func TestLister_List_PullRequest_CloneError(t *testing.T) {
	cloneErr := &process.ExitError{Code: 128, Stderr: "fatal: destination path 'pr-repo' already exists"}
	gh := &mockGitHub{getPullRequestFn: func(slug, number string) (github.PullRequest, error) {
		return github.PullRequest{HeadCloneURL: "url"}, nil
	}}
	g := &mockGit{cloneFn: func(url, parentDir, name string) error { return cloneErr }}
	l := newTestLister(g, gh, PullRequestSource{})

	got, err := l.List(context.Background(), ModePullRequest, "/work/project")

	assert.Nil(t, got)
	assert.Same(t, cloneErr, err)
	assert.Len(t, g.calls, 1, "log must not run after a failed clone")
}

func TestLister_List_PullRequest_NoHostingClient(t *testing.T) {
	l := newTestLister(&mockGit{}, nil, PullRequestSource{})

	_, err := l.List(context.Background(), ModePullRequest, "/work/project")

	assert.True(t, errors.Is(err, errNoHostingClient))
}

func TestLister_List_Branch_Error(t *testing.T) {
	spawnErr := &process.SpawnError{Err: errors.New("exec: \"git\": executable file not found in $PATH")}
	g := &mockGit{listAuthorsFn: func(dir string) ([]string, error) { return nil, spawnErr }}
	l := newTestLister(g, nil, PullRequestSource{})

	got, err := l.List(context.Background(), ModeBranch, ".")

	assert.Nil(t, got)
	assert.Same(t, spawnErr, err)
}

func TestLister_List_PullRequest_RecordsHead(t *testing.T) {
	pr := github.PullRequest{
		Number:       42,
		BaseRepo:     "org/project",
		HeadRef:      "feature",
		HeadRepo:     "contrib/project",
		HeadCloneURL: "https://github.com/contrib/project.git",
	}
	gh := &mockGitHub{getPullRequestFn: func(slug, number string) (github.PullRequest, error) {
		return pr, nil
	}}
	l := newTestLister(&mockGit{}, gh, PullRequestSource{RepoSlug: "org/project", Number: "42"})
	var logs bytes.Buffer
	l.log = clog.New(&logs)
	l.log.SetLevel(clog.DebugLevel)

	_, ok := l.Checked()
	assert.False(t, ok, "nothing checked before List")

	_, err := l.List(context.Background(), ModePullRequest, "/work/project")
	require.NoError(t, err)

	checked, ok := l.Checked()
	require.True(t, ok)
	assert.Equal(t, pr, checked)
	assert.Contains(t, logs.String(), "headRepo=contrib/project")
	assert.Contains(t, logs.String(), "headRef=feature")
	assert.Contains(t, logs.String(), "fork=true")
}

func TestLister_List_Branch_ChecksNoPullRequest(t *testing.T) {
	l := newTestLister(&mockGit{}, &mockGitHub{}, PullRequestSource{})

	_, err := l.List(context.Background(), ModeBranch, ".")
	require.NoError(t, err)

	_, ok := l.Checked()
	assert.False(t, ok)
}
