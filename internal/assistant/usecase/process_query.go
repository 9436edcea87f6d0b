package usecase

import (
	"context"
	"fmt"
	"strings"

	"conversational-support-assistant/internal/assistant"
	"conversational-support-assistant/internal/model"
	"conversational-support-assistant/internal/orchestrator"
)

// ProcessQuery runs one full turn: load the session, append the user message,
// traverse the graph, persist, return the final response.
//
// The whole turn holds the session's lock, so concurrent calls for the same
// key serialize and each observes the previous turn's persisted state.
// Different sessions never block each other.
func (uc *implUseCase) ProcessQuery(ctx context.Context, input assistant.ProcessQueryInput) (assistant.ProcessQueryOutput, error) {
	key := strings.TrimSpace(input.SessionKey)
	if key == "" {
		return assistant.ProcessQueryOutput{}, assistant.ErrEmptySessionKey
	}

	lock := uc.lockSession(key)
	defer uc.unlockSession(key, lock)

	state, err := uc.repo.Load(ctx, key)
	if err != nil {
		uc.l.Errorf(ctx, "internal.assistant.ProcessQuery: load %s: %v", key, err)
		return assistant.ProcessQueryOutput{}, fmt.Errorf("load session state: %w", err)
	}

	state.AppendMessage(model.RoleUser, input.Query)

	if err := uc.turn.RunTurn(ctx, state, orchestrator.TurnConfig{SessionKey: key}); err != nil {
		uc.l.Errorf(ctx, "internal.assistant.ProcessQuery: turn for %s: %v", key, err)
		return assistant.ProcessQueryOutput{}, fmt.Errorf("run turn: %w", err)
	}

	// Persist only after the turn completed. A failed turn never leaves
	// half-written state behind.
	if err := uc.repo.Save(ctx, key, state); err != nil {
		uc.l.Errorf(ctx, "internal.assistant.ProcessQuery: save %s: %v", key, err)
		return assistant.ProcessQueryOutput{}, fmt.Errorf("save session state: %w", err)
	}

	uc.l.Infof(ctx, "internal.assistant.ProcessQuery: session=%s category=%s messages=%d",
		key, state.Category, len(state.Messages))

	return assistant.ProcessQueryOutput{
		SessionKey:   key,
		Category:     state.Category,
		Response:     state.FinalResponse,
		MessageCount: len(state.Messages),
	}, nil
}
