package github

import (
	"encoding/json"
	"errors"
)

// PullRequest holds the fields of a pull request needed to fetch its commits.
type PullRequest struct {
	Number       int
	BaseRepo     string // full name of the target repository, e.g. "org/project"
	HeadRef      string // source branch name
	HeadRepo     string // full name of the source repository, e.g. "contrib/project"
	HeadCloneURL string
}

// IsCrossRepository reports whether the pull request comes from a fork.
func (pr PullRequest) IsCrossRepository() bool {
	return pr.HeadRepo != "" && pr.HeadRepo != pr.BaseRepo
}

// errNoCloneURL is returned when the head repository has no clone URL,
// which happens when the fork has been deleted.
var errNoCloneURL = errors.New("pull request has no head.repo.clone_url")

func (pr *PullRequest) UnmarshalJSON(data []byte) error {
	type rawRepo struct {
		CloneURL string `json:"clone_url"`
		FullName string `json:"full_name"`
	}
	type rawPR struct {
		Number int `json:"number"`
		Base   struct {
			Repo *rawRepo `json:"repo"`
		} `json:"base"`
		Head struct {
			Ref  string   `json:"ref"`
			Repo *rawRepo `json:"repo"`
		} `json:"head"`
	}
	var raw rawPR
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	pr.Number = raw.Number
	pr.HeadRef = raw.Head.Ref
	if raw.Base.Repo != nil {
		pr.BaseRepo = raw.Base.Repo.FullName
	}
	if raw.Head.Repo != nil {
		pr.HeadRepo = raw.Head.Repo.FullName
		pr.HeadCloneURL = raw.Head.Repo.CloneURL
	}

	return nil
}

// decodePullRequest parses an API response body and checks it carries a clone URL.
func decodePullRequest(path string, body []byte) (PullRequest, error) {
	var pr PullRequest
	if err := json.Unmarshal(body, &pr); err != nil {
		return PullRequest{}, &APIError{Path: path, Err: err}
	}
	if pr.HeadCloneURL == "" {
		return PullRequest{}, &APIError{Path: path, Err: errNoCloneURL}
	}
	return pr, nil
}
