package github

import "fmt"

// APIError reports a failed or unusable response from the hosting API.
type APIError struct {
	Path       string
	StatusCode int    // zero when no HTTP response was received
	Message    string // server-provided message, if any
	Err        error
}

func (e *APIError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("GitHub API %s: status %d: %s", e.Path, e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("GitHub API %s: status %d", e.Path, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("GitHub API %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("GitHub API %s: %s", e.Path, e.Message)
	}
}

func (e *APIError) Unwrap() error { return e.Err }
