package usecase

import (
	"context"
	"fmt"
	"strings"

	"conversational-support-assistant/internal/assistant"
)

// ClearContext drops all persisted state for a session.
func (uc *implUseCase) ClearContext(ctx context.Context, sessionKey string) error {
	key := strings.TrimSpace(sessionKey)
	if key == "" {
		return assistant.ErrEmptySessionKey
	}

	lock := uc.lockSession(key)
	defer uc.unlockSession(key, lock)

	if err := uc.repo.Clear(ctx, key); err != nil {
		uc.l.Errorf(ctx, "internal.assistant.ClearContext: clear %s: %v", key, err)
		return fmt.Errorf("clear session state: %w", err)
	}

	uc.l.Infof(ctx, "internal.assistant.ClearContext: session=%s cleared", key)
	return nil
}
