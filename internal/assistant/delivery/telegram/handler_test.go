package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"conversational-support-assistant/internal/assistant"
	"conversational-support-assistant/internal/assistant/delivery/telegram"
	"conversational-support-assistant/internal/model"
	"conversational-support-assistant/pkg/log"
	pkgTelegram "conversational-support-assistant/pkg/telegram"
)

type mockUseCase struct {
	mu         sync.Mutex
	inputs     []assistant.ProcessQueryInput
	cleared    []string
	response   string
	processErr error
	clearErr   error
}

func (m *mockUseCase) ProcessQuery(ctx context.Context, input assistant.ProcessQueryInput) (assistant.ProcessQueryOutput, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, input)
	m.mu.Unlock()
	if m.processErr != nil {
		return assistant.ProcessQueryOutput{}, m.processErr
	}
	return assistant.ProcessQueryOutput{
		SessionKey: input.SessionKey,
		Category:   model.CategoryGeneric,
		Response:   m.response,
	}, nil
}

func (m *mockUseCase) ClearContext(ctx context.Context, sessionKey string) error {
	m.mu.Lock()
	m.cleared = append(m.cleared, sessionKey)
	m.mu.Unlock()
	return m.clearErr
}

func (m *mockUseCase) lastInput() (assistant.ProcessQueryInput, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.inputs) == 0 {
		return assistant.ProcessQueryInput{}, false
	}
	return m.inputs[len(m.inputs)-1], true
}

type capture struct {
	mu       sync.Mutex
	messages []string
}

func (c *capture) add(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, text)
}

func (c *capture) snapshot() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.messages...)
}

func newTestEnv(t *testing.T, muc *mockUseCase) (*gin.Engine, *capture) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sink := &capture{}
	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/sendMessage") {
			var payload map[string]interface{}
			json.NewDecoder(r.Body).Decode(&payload)
			if text, ok := payload["text"].(string); ok {
				sink.add(text)
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok": true}`))
	}))
	t.Cleanup(tgServer.Close)

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(tgServer.URL)

	engine := gin.New()
	h := telegram.New(log.NewNop(), muc, bot)
	engine.POST("/webhook/telegram", h.HandleWebhook)

	return engine, sink
}

func sendWebhook(engine *gin.Engine, text string) *httptest.ResponseRecorder {
	update := pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 1,
			Chat:      &pkgTelegram.Chat{ID: 123},
			From:      &pkgTelegram.User{ID: 456},
			Text:      text,
		},
	}
	body, _ := json.Marshal(update)
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func waitForMessages(c *capture, atLeast int, timeout time.Duration) []string {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		msgs := c.snapshot()
		if len(msgs) >= atLeast {
			return msgs
		}
		time.Sleep(20 * time.Millisecond)
	}
	return c.snapshot()
}

func TestHandleWebhookAcksImmediately(t *testing.T) {
	muc := &mockUseCase{response: "Sure, here it is."}
	engine, _ := newTestEnv(t, muc)

	w := sendWebhook(engine, "hello")
	if w.Code != http.StatusOK {
		t.Fatalf("webhook must ack with 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "accepted") {
		t.Errorf("unexpected ack body: %s", w.Body.String())
	}
}

func TestHandleWebhookRepliesWithResponse(t *testing.T) {
	muc := &mockUseCase{response: "The phone costs $299."}
	engine, sink := newTestEnv(t, muc)

	sendWebhook(engine, "how much is the phone?")
	msgs := waitForMessages(sink, 1, 500*time.Millisecond)

	if len(msgs) == 0 {
		t.Fatal("no reply delivered")
	}
	if msgs[len(msgs)-1] != "The phone costs $299." {
		t.Errorf("unexpected reply: %q", msgs[len(msgs)-1])
	}

	input, ok := muc.lastInput()
	if !ok {
		t.Fatal("usecase never called")
	}
	if input.SessionKey != "telegram_456" {
		t.Errorf("wrong session key: %q", input.SessionKey)
	}
	if input.Query != "how much is the phone?" {
		t.Errorf("wrong query: %q", input.Query)
	}
}

func TestHandleWebhookStartCommand(t *testing.T) {
	muc := &mockUseCase{}
	engine, sink := newTestEnv(t, muc)

	sendWebhook(engine, "/start")
	msgs := waitForMessages(sink, 1, 500*time.Millisecond)

	if len(msgs) == 0 {
		t.Fatal("no welcome delivered")
	}
	if !strings.Contains(msgs[0], "Welcome") {
		t.Errorf("unexpected welcome: %q", msgs[0])
	}
	if _, called := muc.lastInput(); called {
		t.Error("commands must not run a conversational turn")
	}
}

func TestHandleWebhookClearCommand(t *testing.T) {
	muc := &mockUseCase{}
	engine, sink := newTestEnv(t, muc)

	sendWebhook(engine, "/clear")
	msgs := waitForMessages(sink, 1, 500*time.Millisecond)

	if len(msgs) == 0 {
		t.Fatal("no confirmation delivered")
	}
	muc.mu.Lock()
	cleared := append([]string(nil), muc.cleared...)
	muc.mu.Unlock()
	if len(cleared) != 1 || cleared[0] != "telegram_456" {
		t.Errorf("wrong session cleared: %v", cleared)
	}
}

func TestHandleWebhookProcessFailure(t *testing.T) {
	muc := &mockUseCase{processErr: errors.New("store down")}
	engine, sink := newTestEnv(t, muc)

	sendWebhook(engine, "hello")
	msgs := waitForMessages(sink, 1, 500*time.Millisecond)

	if len(msgs) == 0 {
		t.Fatal("no error reply delivered")
	}
	last := msgs[len(msgs)-1]
	if !strings.HasPrefix(last, "Error: ") {
		t.Errorf("failure reply must carry the Error prefix: %q", last)
	}
	if strings.Contains(last, "store down") {
		t.Errorf("raw error leaked to the user: %q", last)
	}
}

func TestHandleWebhookIgnoresNonMessageUpdates(t *testing.T) {
	muc := &mockUseCase{}
	engine, _ := newTestEnv(t, muc)

	body, _ := json.Marshal(pkgTelegram.Update{UpdateID: 2})
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ignored") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}
