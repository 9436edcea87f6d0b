package generic

import (
	"context"
	"fmt"
	"strings"

	"conversational-support-assistant/internal/handler"
	"conversational-support-assistant/internal/model"
	"conversational-support-assistant/internal/orchestrator"
	"conversational-support-assistant/pkg/anthropic"
)

// Handle produces a conversational reply to the latest user message.
func (h *Handler) Handle(ctx context.Context, state *model.ConversationState, cfg orchestrator.TurnConfig) (string, error) {
	messages := handler.HistoryMessages(state)
	if len(messages) == 0 {
		return "", ErrEmptyCompletion
	}

	temperature := Temperature
	resp, err := h.llm.CreateMessage(ctx, &anthropic.Request{
		Model:       h.llm.Model(),
		MaxTokens:   MaxTokens,
		System:      PromptSystem,
		Messages:    messages,
		Temperature: &temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", LogPrefixHandle, err)
	}

	answer := strings.TrimSpace(resp.Text())
	if answer == "" {
		h.l.Warnf(ctx, "%s: session %s: empty completion", LogPrefixHandle, cfg.SessionKey)
		return "", ErrEmptyCompletion
	}

	h.l.Debugf(ctx, "%s: session %s: answered in %d chars", LogPrefixHandle, cfg.SessionKey, len(answer))
	return answer, nil
}
