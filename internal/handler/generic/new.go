package generic

import (
	"conversational-support-assistant/internal/orchestrator"
	"conversational-support-assistant/pkg/anthropic"
	"conversational-support-assistant/pkg/log"
)

// Handler answers everything the product handler does not.
type Handler struct {
	l   log.Logger
	llm anthropic.IAnthropic
}

var _ orchestrator.QueryHandler = (*Handler)(nil)

// New creates a new generic Handler
func New(l log.Logger, llm anthropic.IAnthropic) *Handler {
	return &Handler{
		l:   l,
		llm: llm,
	}
}
