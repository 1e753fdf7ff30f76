package cmd

import (
	"context"

	"github.com/jmcampanini/authorcheck/internal/github"
)

// mockGit implements git.Git for testing
type mockGit struct {
	cloneFn       func(url, parentDir, name string) error
	listAuthorsFn func(dir string) ([]string, error)
	listedDirs    []string
}

func (m *mockGit) ListAuthors(_ context.Context, dir string) ([]string, error) {
	m.listedDirs = append(m.listedDirs, dir)
	if m.listAuthorsFn != nil {
		return m.listAuthorsFn(dir)
	}
	return nil, nil
}

func (m *mockGit) Clone(_ context.Context, url, parentDir, name string) error {
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

// mapEnv returns a getenv function backed by a map.
func mapEnv(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}
