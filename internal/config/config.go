package config

import (
	"errors"
	"strings"
	"time"
)

// Config represents the complete authorcheck configuration.
type Config struct {
	Authors AuthorsConfig `toml:"authors"`
	Git     GitConfig     `toml:"git"`
	GitHub  GitHubConfig  `toml:"github"`
	PR      PRConfig      `toml:"pr"`
}

// Validate checks that all config values are valid.
// Returns an error describing the first invalid value found.
func (c Config) Validate() error {
	if c.Authors.FileName == "" {
		return errors.New("authors.file_name cannot be empty")
	}
	if strings.ContainsAny(c.Authors.FileName, `/\`) {
		return errors.New("authors.file_name must be a file name, not a path")
	}
	if c.Git.Timeout < 0 {
		return errors.New("git.timeout cannot be negative")
	}
	if !c.GitHub.Backend.IsValid() {
		return errors.New(`github.backend must be "rest" or "gh"`)
	}
	if c.GitHub.Backend == BackendREST && c.GitHub.APIURL == "" {
		return errors.New("github.api_url cannot be empty")
	}
	if c.GitHub.Timeout < 0 {
		return errors.New("github.timeout cannot be negative")
	}
	if c.PR.CloneDir == "" {
		return errors.New("pr.clone_dir cannot be empty")
	}
	if strings.ContainsAny(c.PR.CloneDir, `/\`) {
		return errors.New("pr.clone_dir must be a directory name, not a path")
	}
	return nil
}

// AuthorsConfig configures where declared authors are read from.
type AuthorsConfig struct {
	FileName string `toml:"file_name"` // e.g., "AUTHORS"
}

// GitConfig configures git command execution.
type GitConfig struct {
	Timeout time.Duration `toml:"timeout"` // 0 disables the timeout
}

type Backend string

const (
	BackendREST Backend = "rest" // HTTP requests to the REST API
	BackendGh   Backend = "gh"   // `gh api`, using gh's own authentication
)

func (b Backend) IsValid() bool {
	switch b {
	case BackendREST, BackendGh:
		return true
	}
	return false
}

// GitHubConfig configures how pull request metadata is fetched.
type GitHubConfig struct {
	APIURL   string        `toml:"api_url"`
	Backend  Backend       `toml:"backend"`
	Timeout  time.Duration `toml:"timeout"`   // 0 disables the timeout
	TokenEnv string        `toml:"token_env"` // environment variable holding an API token
}

// PRConfig configures pull request mode.
type PRConfig struct {
	CloneDir string `toml:"clone_dir"` // created next to the checked directory
	// NumberEnv and SlugEnv name the environment variables the CI system
	// exposes the pull request number and repository slug in.
	NumberEnv string `toml:"number_env"`
	SlugEnv   string `toml:"slug_env"`
}
