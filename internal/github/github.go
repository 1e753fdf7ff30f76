package github

import "context"

type GitHub interface {

	// GetPullRequest returns the pull request with the given number in the repository
	// identified by slug ("owner/name").
	// Neither value is validated; malformed input surfaces as an *APIError.
	GetPullRequest(ctx context.Context, slug, number string) (PullRequest, error)
}

// pullRequestPath returns the REST path of a pull request, relative to the API root.
func pullRequestPath(slug, number string) string {
	return "/repos/" + slug + "/pulls/" + number
}
