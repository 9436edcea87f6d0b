package assistant

import "conversational-support-assistant/internal/model"

type ProcessQueryInput struct {
	// SessionKey identifies the conversation. Stable across turns of one
	// conversation, unique across conversations.
	SessionKey string
	// Query is the raw user text. May be empty; an empty query still runs
	// a full turn and produces the fixed apology.
	Query string
}

type ProcessQueryOutput struct {
	SessionKey string
	Category   model.Category
	Response   string
	// MessageCount is the total number of messages persisted for the
	// session after this turn.
	MessageCount int
}
