package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"conversational-support-assistant/internal/assistant"
	"conversational-support-assistant/internal/model"
	"conversational-support-assistant/internal/orchestrator"
	"conversational-support-assistant/internal/session/repository/memory"
	"conversational-support-assistant/pkg/log"
)

type okTurn struct{}

func (okTurn) RunTurn(_ context.Context, state *model.ConversationState, _ orchestrator.TurnConfig) error {
	state.Category = model.CategoryGeneric
	state.FinalResponse = "ok."
	state.AppendMessage(model.RoleAssistant, "ok.")
	return nil
}

func (uc *implUseCase) lockCount() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return len(uc.locks)
}

func TestSessionLocksReleasedAfterProcessQuery(t *testing.T) {
	uc := New(log.NewNop(), memory.New(), okTurn{}).(*implUseCase)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		input := assistant.ProcessQueryInput{
			SessionKey: fmt.Sprintf("session-%d", i),
			Query:      "hello",
		}
		if _, err := uc.ProcessQuery(ctx, input); err != nil {
			t.Fatalf("ProcessQuery: %v", err)
		}
	}

	if n := uc.lockCount(); n != 0 {
		t.Errorf("lock map holds %d entries after all turns finished, want 0", n)
	}
}

func TestSessionLocksReleasedAfterClearContext(t *testing.T) {
	uc := New(log.NewNop(), memory.New(), okTurn{}).(*implUseCase)
	ctx := context.Background()

	if _, err := uc.ProcessQuery(ctx, assistant.ProcessQueryInput{SessionKey: "s1", Query: "hi"}); err != nil {
		t.Fatalf("ProcessQuery: %v", err)
	}
	if err := uc.ClearContext(ctx, "s1"); err != nil {
		t.Fatalf("ClearContext: %v", err)
	}

	if n := uc.lockCount(); n != 0 {
		t.Errorf("lock map holds %d entries after clear, want 0", n)
	}
}

func TestSessionLocksReleasedUnderConcurrency(t *testing.T) {
	uc := New(log.NewNop(), memory.New(), okTurn{}).(*implUseCase)
	ctx := context.Background()

	const workers = 16
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("session-%d", i%4)
			if _, err := uc.ProcessQuery(ctx, assistant.ProcessQueryInput{SessionKey: key, Query: "hi"}); err != nil {
				t.Errorf("ProcessQuery: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if n := uc.lockCount(); n != 0 {
		t.Errorf("lock map holds %d entries after all workers finished, want 0", n)
	}
}
