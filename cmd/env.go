package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jmcampanini/authorcheck/internal/authorsfile"
	"github.com/jmcampanini/authorcheck/internal/config"
	"github.com/jmcampanini/authorcheck/internal/git"
	"github.com/jmcampanini/authorcheck/internal/github"
	"github.com/jmcampanini/authorcheck/internal/process"
	"github.com/spf13/cobra"
)

// commandDeps holds injectable dependencies for testing.
type commandDeps struct {
	gh     github.GitHub
	git    git.Git
	getenv func(string) string
}

// commandEnv holds the resolved configuration and clients for a command.
type commandEnv struct {
	cfg       config.Config
	getenv    func(string) string
	ghClient  github.GitHub
	gitClient git.Git
}

// directoryArg returns the directory argument, defaulting to the current directory.
func directoryArg(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return "."
}

// initCommandEnv initializes the environment from deps (for testing) or from the OS.
func initCommandEnv(dir string, deps *commandDeps, cfg *config.Config) (*commandEnv, error) {
	if deps != nil {
		loadedCfg := config.DefaultConfig()
		if cfg != nil {
			loadedCfg = *cfg
		}
		getenv := deps.getenv
		if getenv == nil {
			getenv = func(string) string { return "" }
		}
		return &commandEnv{
			cfg:       loadedCfg,
			getenv:    getenv,
			ghClient:  deps.gh,
			gitClient: deps.git,
		}, nil
	}

	return initCommandEnvFromOS(dir)
}

// initCommandEnvFromOS loads config for dir and creates clients from it.
// A missing dir is reported as an unreadable AUTHORS file, as the reader would.
func initCommandEnvFromOS(dir string) (*commandEnv, error) {
	loadResult, err := config.NewDefaultLoader().LoadFor(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg := loadResult.Config

	info, err := os.Stat(dir)
	if err == nil && !info.IsDir() {
		err = fmt.Errorf("%s is not a directory", dir)
	}
	if err != nil {
		path := authorsfile.NewReader(cfg.Authors.FileName).Path(dir)
		return nil, &authorsfile.UnreadableError{Path: path, Err: err}
	}

	return &commandEnv{
		cfg:       cfg,
		getenv:    os.Getenv,
		ghClient:  newGitHubClient(cfg.GitHub, os.Getenv),
		gitClient: git.New(process.NewOSRunner("git"), cfg.Git.Timeout),
	}, nil
}

// newGitHubClient creates the hosting API client selected by cfg.Backend.
func newGitHubClient(cfg config.GitHubConfig, getenv func(string) string) github.GitHub {
	if cfg.Backend == config.BackendGh {
		return github.NewCli(process.NewOSRunner("gh"), cfg.Timeout)
	}

	var token string
	if cfg.TokenEnv != "" {
		token = getenv(cfg.TokenEnv)
	}
	return github.NewREST(cfg.APIURL, token, cfg.Timeout)
}

// commandContext returns the command's context, or a background context when unset.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
