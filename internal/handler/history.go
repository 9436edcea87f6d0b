package handler

import (
	"conversational-support-assistant/internal/model"
	"conversational-support-assistant/pkg/anthropic"
)

// MaxHistoryMessages bounds how much conversation history is replayed to the
// LLM. Older messages are dropped, the latest user message is always kept.
const MaxHistoryMessages = 12

// HistoryMessages converts the conversation tail into Anthropic chat messages.
// The window always starts on a user message so the replayed history opens
// with a user turn, which the messages API requires.
func HistoryMessages(state *model.ConversationState) []anthropic.Message {
	msgs := state.Messages
	if len(msgs) > MaxHistoryMessages {
		msgs = msgs[len(msgs)-MaxHistoryMessages:]
	}
	for len(msgs) > 0 && msgs[0].Role != model.RoleUser {
		msgs = msgs[1:]
	}

	out := make([]anthropic.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, anthropic.Message{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}
	return out
}
