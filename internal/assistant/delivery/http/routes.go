package http

import (
	"github.com/gin-gonic/gin"

	"conversational-support-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	chat := rg.Group("/chat")
	{
		chat.POST("", mw.RateLimit(), h.Chat)
		chat.DELETE("/sessions/:id", mw.RateLimit(), h.ClearSession)
	}
}
