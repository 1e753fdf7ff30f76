package config

// DefaultConfig returns sensible defaults for all configuration.
func DefaultConfig() Config {
	return Config{
		Authors: AuthorsConfig{
			FileName: "AUTHORS",
		},
		Git: GitConfig{
			Timeout: 0,
		},
		GitHub: GitHubConfig{
			APIURL:   "https://api.github.com",
			Backend:  BackendREST,
			Timeout:  0,
			TokenEnv: "GITHUB_TOKEN",
		},
		PR: PRConfig{
			CloneDir:  "pr-repo",
			NumberEnv: "TRAVIS_PULL_REQUEST",
			SlugEnv:   "TRAVIS_REPO_SLUG",
		},
	}
}
