package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"conversational-support-assistant/internal/assistant"
	"conversational-support-assistant/pkg/response"
)

// mapError translates use-case errors into HTTP responses. Store failures
// and turn failures are internal errors; the raw error never reaches the
// client.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, assistant.ErrEmptySessionKey):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
