// Package errors renders failures as RFC 7807 problem documents.
package errors

import (
	"fmt"
	"net/http"
)

// ProblemDetail is the application/problem+json body.
// See: https://www.rfc-editor.org/rfc/rfc7807
type ProblemDetail struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

func (p ProblemDetail) Error() string {
	if p.Detail != "" {
		return fmt.Sprintf("%s: %s", p.Title, p.Detail)
	}
	return p.Title
}

// WithDetail returns a copy carrying detail.
func (p ProblemDetail) WithDetail(detail string) ProblemDetail {
	p.Detail = detail
	return p
}

// Problem types answered by the back office. Relative unless the responder has a base URI.
const (
	TypeValidation  = "/problems/validation-error"
	TypeNotFound    = "/problems/not-found"
	TypeConflict    = "/problems/conflict"
	TypeInternal    = "/problems/internal-error"
	TypeBadRequest  = "/problems/bad-request"
	TypeUpstream    = "/problems/upstream-unavailable"
	TypeBadUpstream = "/problems/upstream-malformed"
)

var (
	// ErrNotFound covers missing orders, categories and employees.
	ErrNotFound = ProblemDetail{Type: TypeNotFound, Title: "Resource Not Found", Status: http.StatusNotFound}

	// ErrValidation is a request the domain rejected, e.g. an unknown order status.
	ErrValidation = ProblemDetail{Type: TypeValidation, Title: "Validation Error", Status: http.StatusBadRequest}

	// ErrBadRequest is a request that never reached the domain: bad path id, unparsable body.
	ErrBadRequest = ProblemDetail{Type: TypeBadRequest, Title: "Bad Request", Status: http.StatusBadRequest}

	// ErrConflict is a uniqueness clash such as a taken slug or username.
	ErrConflict = ProblemDetail{Type: TypeConflict, Title: "Conflict", Status: http.StatusConflict}

	ErrInternal = ProblemDetail{Type: TypeInternal, Title: "Internal Server Error", Status: http.StatusInternalServerError}

	// ErrUpstreamUnavailable reports that a store or remote API behind the reports failed.
	ErrUpstreamUnavailable = ProblemDetail{Type: TypeUpstream, Title: "Upstream Unavailable", Status: http.StatusBadGateway}

	// ErrUpstreamMalformed reports rows from a store or remote API that the aggregators rejected.
	ErrUpstreamMalformed = ProblemDetail{Type: TypeBadUpstream, Title: "Malformed Upstream Data", Status: http.StatusBadGateway}
)
