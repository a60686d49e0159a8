// Package respond writes every API response, success or failure, in one shape.
package respond

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"videogame-catalog/internal/errs"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

type ErrorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  []errs.FieldError `json:"fields,omitempty"`
}

func (r Responder) WriteJSON(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

func (r Responder) OK(c *gin.Context, data any) {
	r.WriteJSON(c, http.StatusOK, data)
}

func (r Responder) Created(c *gin.Context, data any) {
	r.WriteJSON(c, http.StatusCreated, data)
}

func (r Responder) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// WriteError maps err onto a status and body and aborts the chain. Errors outside the
// errs taxonomy are logged and reported as a bare 500.
func (r Responder) WriteError(c *gin.Context, err error) {
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(c.Request.Context().Err(), context.DeadlineExceeded) {
			apiErr = errs.NewTimeoutError(err)
		} else {
			apiErr = errs.NewInternalErrorWithCause(err)
		}
	}

	logger := r.logger.With().
		Str("request_id", c.GetString(RequestIDKey)).
		Str("method", c.Request.Method).
		Str("path", c.FullPath()).
		Int("status", apiErr.StatusCode).
		Logger()
	switch {
	case apiErr.StatusCode >= http.StatusInternalServerError:
		logger.Error().Err(err).Msg("request failed")
	case apiErr.StatusCode == http.StatusRequestTimeout:
		logger.Warn().Err(err).Msg("request timed out")
	default:
		logger.Debug().Str("reason", apiErr.Message()).Msg("request rejected")
	}

	c.AbortWithStatusJSON(apiErr.StatusCode, ErrorBody{
		Code:    apiErr.Code,
		Message: apiErr.Message(),
		Fields:  apiErr.Fields,
	})
}
