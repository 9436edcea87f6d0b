package router

import "time"

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Router prompts
const (
	PromptRouterSystem = `You are a query classifier for a customer support assistant. Classify the user query into exactly one of two categories.

product_review queries include:
- Questions about product features, specifications, or capabilities
- Product prices and availability inquiries
- Requests for product reviews or comparisons
- Product warranty or guarantee questions
- Product shipping or delivery inquiries
- Product compatibility or dimension questions
- Product recommendations

generic queries include:
- Customer service inquiries
- Account-related questions
- Technical support issues
- Website navigation help
- Payment or billing queries
- Return policy questions
- Company information requests

Return ONLY 'product_review' or 'generic' as response.`

	PromptRouterUser = `Query: %s`
)

// Router configuration
const (
	RouterTemperature = 0.1
	RouterMaxTokens   = 16

	// CacheSize bounds the decision cache.
	CacheSize = 512

	// CacheTTL keeps routing decisions hot for repeated queries without
	// letting stale classifications live forever.
	CacheTTL = 5 * time.Minute
)

// Error messages
const (
	ErrMsgLLMCallFailed = "classifier call failed, falling back to generic"
	ErrMsgEmptyResponse = "empty classifier response, falling back to generic"
)
