package product

// Log prefixes
const (
	LogPrefixHandle = "internal.handler.product.Handle"
)

const (
	// PromptSystem steers the model toward product questions only. The
	// router has already decided this turn is about products, so the
	// prompt does not re-ask for classification.
	PromptSystem = `You are a product information assistant for an online electronics store.
Answer the user's question about products, pricing, availability, reviews or buying options.
Be concise and factual. If you do not have the information requested, say so plainly instead of inventing details.
Reply with the answer text only, without any role labels or prefixes.`

	// Temperature and MaxTokens for product answers. Slightly creative but
	// grounded.
	Temperature = 0.3
	MaxTokens   = 512
)
