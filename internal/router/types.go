package router

import (
	"time"

	"conversational-support-assistant/internal/model"
)

// RoutingDecision records one routing outcome for observability.
// It is logged and discarded, never persisted.
type RoutingDecision struct {
	SessionKey string         `json:"session_key"`
	Category   model.Category `json:"category"`
	Sequence   uint64         `json:"sequence"`
	DecidedAt  time.Time      `json:"decided_at"`
	FromCache  bool           `json:"from_cache"`
}
