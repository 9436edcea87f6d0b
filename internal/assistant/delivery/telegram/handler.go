package telegram

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"conversational-support-assistant/internal/assistant"
	pkgLog "conversational-support-assistant/pkg/log"
	pkgResponse "conversational-support-assistant/pkg/response"
	pkgTelegram "conversational-support-assistant/pkg/telegram"
)

type handler struct {
	l   pkgLog.Logger
	uc  assistant.UseCase
	bot *pkgTelegram.Bot
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine to avoid the Telegram webhook timeout (Telegram
// expects a response within a few seconds, an LLM turn can take longer).
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message

	go func() {
		// Detach from HTTP request context (which gets cancelled after response)
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message: commands first, then one
// full conversational turn. Turn failures reach the user as a readable
// "Error: ..." message, never as silence.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	switch msg.Text {
	case "/start":
		return h.bot.SendMessageWithMode(msg.Chat.ID,
			"👋 Welcome! I'm your *support assistant*.\n\nAsk me about products, prices and buying options, or anything else about the store.\n\n_Example: \"How much is the phone and what colors does it come in?\"_",
			"Markdown",
		)
	case "/help":
		return h.bot.SendMessageWithMode(msg.Chat.ID,
			"*How to use:*\n\nJust type your question. I keep the conversation context, so follow-up questions work too.\n\nSend /clear to start a fresh conversation.",
			"Markdown",
		)
	case "/clear":
		if err := h.uc.ClearContext(ctx, sessionKey(msg)); err != nil {
			h.l.Errorf(ctx, "telegram handler: ClearContext failed: %v", err)
			return h.bot.SendMessage(msg.Chat.ID, "Error: could not clear the conversation. Please try again.")
		}
		return h.bot.SendMessage(msg.Chat.ID, "Conversation cleared. What would you like to know?")
	}

	if err := h.bot.SendTyping(msg.Chat.ID); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to send typing action: %v", err)
	}

	output, err := h.uc.ProcessQuery(ctx, assistant.ProcessQueryInput{
		SessionKey: sessionKey(msg),
		Query:      msg.Text,
	})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: ProcessQuery failed: %v", err)
		return h.bot.SendMessage(msg.Chat.ID, "Error: something went wrong while processing your message. Please try again.")
	}

	return h.bot.SendMessage(msg.Chat.ID, output.Response)
}

// sessionKey derives a stable per-user session key from the Telegram sender,
// falling back to the chat when the sender is absent (channel posts).
func sessionKey(msg *pkgTelegram.Message) string {
	if msg.From != nil {
		return fmt.Sprintf("telegram_%d", msg.From.ID)
	}
	return fmt.Sprintf("telegram_chat_%d", msg.Chat.ID)
}
