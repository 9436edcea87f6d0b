package composer

// User-facing fallback texts. Exact strings are part of the contract,
// tests match on them.
const (
	// InsufficientInfoText replaces empty/none/null handler output.
	InsufficientInfoText = "I don't have enough information to answer that."

	// ComposeErrorText is returned if the pipeline fails unexpectedly.
	// Raw input is never returned to the user.
	ComposeErrorText = "I apologize, but I encountered an error. Please try again."
)

// artifactTokens are role prefixes that leak from LLM output and must be
// removed before display. Longer tokens first so "Final Answer:" is consumed
// before "Answer:".
var artifactTokens = []string{
	"Final Answer:",
	"Assistant:",
	"Response:",
	"Output:",
	"Answer:",
	"System:",
	"Human:",
	"User:",
	"AI:",
}

// nullishValues are handler outputs treated as "no answer".
var nullishValues = map[string]bool{
	"":     true,
	"none": true,
	"null": true,
}
