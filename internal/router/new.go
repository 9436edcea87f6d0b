package router

import (
	"context"
	"sync/atomic"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"conversational-support-assistant/internal/model"
	"conversational-support-assistant/pkg/anthropic"
	"conversational-support-assistant/pkg/log"
)

// Router is the interface for query classification.
type Router interface {
	// Classify never fails: any classifier problem resolves to the
	// generic category.
	Classify(ctx context.Context, query string, sessionKey string) model.Category
}

// SemanticRouter classifies queries using an LLM, with a TTL-bounded
// decision cache for repeated queries.
type SemanticRouter struct {
	llm   anthropic.IAnthropic
	l     log.Logger
	cache *expirable.LRU[string, model.Category]
	seq   atomic.Uint64
}

// Ensure SemanticRouter implements Router interface
var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(llm anthropic.IAnthropic, l log.Logger) *SemanticRouter {
	return &SemanticRouter{
		llm:   llm,
		l:     l,
		cache: expirable.NewLRU[string, model.Category](CacheSize, nil, CacheTTL),
	}
}
