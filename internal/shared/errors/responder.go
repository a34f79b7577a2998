package errors

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// ContentTypeProblemJSON is the media type for problem responses.
const ContentTypeProblemJSON = "application/problem+json"

// Responder writes problem documents, prefixing relative types with BaseURI.
type Responder struct {
	BaseURI string
}

// DefaultResponder uses relative problem types.
var DefaultResponder = &Responder{}

// Respond writes problem, filling Instance from the request path when unset.
func (r *Responder) Respond(c *gin.Context, problem ProblemDetail) {
	if r.BaseURI != "" && len(problem.Type) > 0 && problem.Type[0] == '/' {
		problem.Type = r.BaseURI + problem.Type
	}
	if problem.Instance == "" {
		problem.Instance = c.Request.URL.Path
	}
	c.Header("Content-Type", ContentTypeProblemJSON)
	c.JSON(problem.Status, problem)
}

// RespondError passes ProblemDetail errors through and answers 500 for the rest.
func (r *Responder) RespondError(c *gin.Context, err error) {
	var problem ProblemDetail
	if errors.As(err, &problem) {
		r.Respond(c, problem)
		return
	}
	r.Respond(c, ErrInternal.WithDetail(err.Error()))
}

// BadRequest sends a 400 for input the handler could not decode.
func (r *Responder) BadRequest(c *gin.Context, detail string) {
	r.Respond(c, ErrBadRequest.WithDetail(detail))
}

// ErrorMapper turns an application error into a problem when it recognises it.
type ErrorMapper func(err error) (ProblemDetail, bool)

// ChainedResponder consults its mappers in order before the default handling.
type ChainedResponder struct {
	*Responder
	mappers []ErrorMapper
}

func NewChainedResponder(baseURI string, mappers ...ErrorMapper) *ChainedResponder {
	return &ChainedResponder{
		Responder: &Responder{BaseURI: baseURI},
		mappers:   mappers,
	}
}

func (r *ChainedResponder) RespondError(c *gin.Context, err error) {
	for _, mapper := range r.mappers {
		if problem, ok := mapper(err); ok {
			r.Respond(c, problem)
			return
		}
	}
	r.Responder.RespondError(c, err)
}

// MapSentinels answers with problem when err wraps any of sentinels.
// The error text becomes the detail.
func MapSentinels(problem ProblemDetail, sentinels ...error) ErrorMapper {
	return func(err error) (ProblemDetail, bool) {
		for _, sentinel := range sentinels {
			if errors.Is(err, sentinel) {
				return problem.WithDetail(err.Error()), true
			}
		}
		return ProblemDetail{}, false
	}
}
