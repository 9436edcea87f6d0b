package telegram

import (
	"github.com/gin-gonic/gin"

	"conversational-support-assistant/internal/assistant"
	pkgLog "conversational-support-assistant/pkg/log"
	pkgTelegram "conversational-support-assistant/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc assistant.UseCase, bot *pkgTelegram.Bot) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		bot: bot,
	}
}
