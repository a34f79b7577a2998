package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrMalformedResponse is returned when a 200 response body cannot be decoded.
var ErrMalformedResponse = errors.New("backend API returned a malformed body")

// APIError describes a non-200 answer from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend API error (%d): %s", e.StatusCode, e.Message)
}

type problemBody struct {
	Title   *string `json:"title"`
	Detail  *string `json:"detail"`
	Message *string `json:"message"`
}

func newAPIError(resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
	var problem problemBody
	if err := json.Unmarshal(body, &problem); err != nil {
		return apiErr
	}
	for _, candidate := range []*string{problem.Detail, problem.Message, problem.Title} {
		if candidate == nil {
			continue
		}
		if msg := strings.TrimSpace(*candidate); msg != "" {
			apiErr.Message = msg
			break
		}
	}
	return apiErr
}
