package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	clog "github.com/charmbracelet/log"
)

// DefaultAPIURL is the root of the public GitHub REST API.
const DefaultAPIURL = "https://api.github.com"

// maxErrorBody caps how much of a failed response is read for its message.
const maxErrorBody = 64 << 10

// RESTClient fetches pull requests from the GitHub REST API over HTTP.
type RESTClient struct {
	baseURL string
	http    *http.Client
	log     *clog.Logger
	token   string
}

var _ GitHub = &RESTClient{}

// NewREST creates a RESTClient for the API rooted at baseURL.
// An empty token sends unauthenticated requests. A zero timeout means none.
func NewREST(baseURL, token string, timeout time.Duration) GitHub {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     clog.Default().WithPrefix("github"),
		token:   token,
	}
}

func (c *RESTClient) GetPullRequest(ctx context.Context, slug, number string) (PullRequest, error) {
	path := pullRequestPath(slug, number)
	body, err := c.get(ctx, path)
	if err != nil {
		return PullRequest{}, err
	}
	return decodePullRequest(path, body)
}

func (c *RESTClient) get(ctx context.Context, path string) ([]byte, error) {
	c.log.Debug("Requesting GitHub API", "method", http.MethodGet, "url", c.baseURL+path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, &APIError{Path: path, Err: err}
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	req.Header.Set("User-Agent", "authorcheck")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("GitHub API request failed", "path", path, "error", err)
		return nil, &APIError{Path: path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := errorMessage(io.LimitReader(resp.Body, maxErrorBody))
		c.log.Warn("GitHub API returned an error", "path", path, "status", resp.StatusCode, "message", msg)
		return nil, &APIError{Path: path, StatusCode: resp.StatusCode, Message: msg}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Path: path, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	c.log.Debug("GitHub API request succeeded", "path", path, "status", resp.StatusCode, "bodyLen", len(body))
	return body, nil
}

// errorMessage extracts the "message" field of a GitHub error body,
// falling back to the trimmed body text.
func errorMessage(r io.Reader) string {
	data, err := io.ReadAll(r)
	if err != nil {
		return ""
	}

	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &payload) == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(data))
}
