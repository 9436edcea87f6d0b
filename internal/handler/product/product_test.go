package product_test

import (
	"context"
	"errors"
	"testing"

	"conversational-support-assistant/internal/handler/product"
	"conversational-support-assistant/internal/model"
	"conversational-support-assistant/internal/orchestrator"
	"conversational-support-assistant/pkg/anthropic"
	"conversational-support-assistant/pkg/log"
)

type mockLLM struct {
	lastReq *anthropic.Request
	answer  string
	err     error
}

func (m *mockLLM) CreateMessage(ctx context.Context, req *anthropic.Request) (*anthropic.Response, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &anthropic.Response{
		Content: []anthropic.ContentBlock{{Type: "text", Text: m.answer}},
	}, nil
}

func (m *mockLLM) Model() string { return "claude-3-haiku-20240307" }

func TestHandle(t *testing.T) {
	llm := &mockLLM{answer: "The phone costs $299 and ships in two days."}
	h := product.New(log.NewNop(), llm)

	state := model.NewConversationState()
	state.AppendMessage(model.RoleUser, "How much is the phone?")

	got, err := h.Handle(context.Background(), state, orchestrator.TurnConfig{SessionKey: "s1"})
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if got != "The phone costs $299 and ships in two days." {
		t.Errorf("unexpected answer: %q", got)
	}

	req := llm.lastReq
	if req == nil {
		t.Fatal("llm never called")
	}
	if req.System != product.PromptSystem {
		t.Errorf("wrong system prompt: %q", req.System)
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
		t.Errorf("unexpected messages: %+v", req.Messages)
	}
	if req.Temperature == nil || *req.Temperature != product.Temperature {
		t.Errorf("temperature not set: %v", req.Temperature)
	}
}

func TestHandleCarriesHistory(t *testing.T) {
	llm := &mockLLM{answer: "Yes, it comes in black."}
	h := product.New(log.NewNop(), llm)

	state := model.NewConversationState()
	state.AppendMessage(model.RoleUser, "How much is the phone?")
	state.AppendMessage(model.RoleAssistant, "The phone costs $299.")
	state.AppendMessage(model.RoleUser, "Does it come in black?")

	if _, err := h.Handle(context.Background(), state, orchestrator.TurnConfig{SessionKey: "s1"}); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	if len(llm.lastReq.Messages) != 3 {
		t.Fatalf("expected full history, got %d messages", len(llm.lastReq.Messages))
	}
	if llm.lastReq.Messages[1].Role != "assistant" {
		t.Errorf("history roles not preserved: %+v", llm.lastReq.Messages)
	}
}

func TestHandleLLMError(t *testing.T) {
	llm := &mockLLM{err: errors.New("upstream 500")}
	h := product.New(log.NewNop(), llm)

	state := model.NewConversationState()
	state.AppendMessage(model.RoleUser, "hi")

	if _, err := h.Handle(context.Background(), state, orchestrator.TurnConfig{}); err == nil {
		t.Error("expected error from failing llm")
	}
}

func TestHandleEmptyCompletion(t *testing.T) {
	llm := &mockLLM{answer: "   "}
	h := product.New(log.NewNop(), llm)

	state := model.NewConversationState()
	state.AppendMessage(model.RoleUser, "hi")

	_, err := h.Handle(context.Background(), state, orchestrator.TurnConfig{})
	if !errors.Is(err, product.ErrEmptyCompletion) {
		t.Errorf("expected ErrEmptyCompletion, got %v", err)
	}
}
