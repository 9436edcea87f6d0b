package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "conversational-support-assistant/internal/assistant/delivery/http"
	"conversational-support-assistant/internal/middleware"
)

// setupAssistantDomain registers the chat API under /api/v1/chat.
//
// Pattern to follow when adding a new domain:
//  1. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  2. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := chatHTTP.New(srv.l, srv.assistantUC)
	chatHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Assistant domain registered")
	return nil
}
