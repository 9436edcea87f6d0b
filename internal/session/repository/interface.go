package repository

import (
	"context"

	"conversational-support-assistant/internal/model"
)

// Repository is the session checkpointer: it persists one ConversationState
// per session key.
//
// Contract:
//   - Load returns a fresh empty state for unknown keys, never nil.
//   - Save replaces the prior entry entirely (last-write-wins).
//   - Implementations must support concurrent access with per-key
//     consistency; callers serialize turns on the same key themselves.
type Repository interface {
	Load(ctx context.Context, sessionKey string) (*model.ConversationState, error)
	Save(ctx context.Context, sessionKey string, state *model.ConversationState) error
	Clear(ctx context.Context, sessionKey string) error
}
