package assistant

import (
	"context"

	"conversational-support-assistant/internal/model"
	"conversational-support-assistant/internal/orchestrator"
)

type UseCase interface {
	// ProcessQuery runs one full conversational turn for a session and
	// returns the final displayable response. It errors only when the
	// session store fails or the turn cannot be executed at all; every
	// handler or classifier failure is absorbed into fallback text.
	ProcessQuery(ctx context.Context, input ProcessQueryInput) (ProcessQueryOutput, error)

	// ClearContext removes all persisted state for a session. The next
	// ProcessQuery for the same key starts a fresh conversation.
	ClearContext(ctx context.Context, sessionKey string) error
}

// TurnRunner executes one traversal of the conversation graph.
// *orchestrator.Orchestrator satisfies it.
type TurnRunner interface {
	RunTurn(ctx context.Context, state *model.ConversationState, cfg orchestrator.TurnConfig) error
}
