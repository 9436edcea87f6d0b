package router

import (
	"context"
	"fmt"
	"strings"
	"time"

	"conversational-support-assistant/internal/model"
	"conversational-support-assistant/pkg/anthropic"
)

// Classify determines the category for a user query.
// Convention: Method accepts context.Context as first parameter
func (r *SemanticRouter) Classify(ctx context.Context, query string, sessionKey string) model.Category {
	cacheKey := strings.ToLower(strings.TrimSpace(query))

	if category, ok := r.cache.Get(cacheKey); ok {
		r.emitDecision(ctx, sessionKey, query, category, true)
		return category
	}

	category := r.classify(ctx, query, sessionKey)
	category = validateCategory(category)

	r.cache.Add(cacheKey, category)
	r.emitDecision(ctx, sessionKey, query, category, false)

	return category
}

// classify asks the LLM and normalizes the free-text answer.
func (r *SemanticRouter) classify(ctx context.Context, query string, sessionKey string) model.Category {
	temperature := RouterTemperature

	resp, err := r.llm.CreateMessage(ctx, &anthropic.Request{
		System:      PromptRouterSystem,
		MaxTokens:   RouterMaxTokens,
		Temperature: &temperature,
		Messages: []anthropic.Message{
			{Role: "user", Content: fmt.Sprintf(PromptRouterUser, query)},
		},
	})
	if err != nil {
		r.l.Warnf(ctx, "%s: session %s: %s: %v", LogPrefixClassify, sessionKey, ErrMsgLLMCallFailed, err)
		return model.CategoryGeneric
	}

	answer := strings.ToLower(strings.TrimSpace(resp.Text()))
	if answer == "" {
		r.l.Warnf(ctx, "%s: session %s: %s", LogPrefixClassify, sessionKey, ErrMsgEmptyResponse)
		return model.CategoryGeneric
	}

	// Permissive substring match: generic is the safe fallback, so the
	// product category requires an explicit token.
	if strings.Contains(answer, string(model.CategoryProductReview)) {
		return model.CategoryProductReview
	}
	return model.CategoryGeneric
}

// validateCategory rejects anything outside the closed two-element set.
func validateCategory(category model.Category) model.Category {
	if !category.Valid() {
		return model.CategoryGeneric
	}
	return category
}

// emitDecision logs the routing decision. Observability only, the record is
// not part of the returned value and is never persisted.
func (r *SemanticRouter) emitDecision(ctx context.Context, sessionKey, query string, category model.Category, fromCache bool) {
	decision := RoutingDecision{
		SessionKey: sessionKey,
		Category:   category,
		Sequence:   r.seq.Add(1),
		DecidedAt:  time.Now(),
		FromCache:  fromCache,
	}

	r.l.Infof(ctx, "%s: session %s - routed message %q to category %s (seq=%d cache=%t)",
		LogPrefixClassify, decision.SessionKey, truncate(query, 50), decision.Category,
		decision.Sequence, decision.FromCache)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
