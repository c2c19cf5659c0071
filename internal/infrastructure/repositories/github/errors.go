package github

import (
	"errors"
	"fmt"

	gh "github.com/google/go-github/v66/github"
)

// APIError carries the status code and body of a non-2xx forge response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("forge API error (status %d): %s", e.StatusCode, e.Body)
}

// wrapAPIError converts go-github's error into an *APIError when the
// failure was an HTTP-level rejection; transport errors pass through.
func wrapAPIError(err error) error {
	var errResp *gh.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return &APIError{
			StatusCode: errResp.Response.StatusCode,
			Body:       errResp.Message,
		}
	}
	return err
}
