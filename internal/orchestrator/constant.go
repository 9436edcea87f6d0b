package orchestrator

// Log prefixes
const (
	LogPrefixRunTurn = "internal.orchestrator.RunTurn"
)

// Fixed fallback texts. Exact strings are part of the contract, tests match
// on them.
const (
	// HandlerFailureText is written to the handler result when a domain
	// handler fails, so the traversal always completes.
	HandlerFailureText = "I apologize, but I couldn't process your request properly. Please try again."

	// NoResultText replaces an empty handler result before composition.
	NoResultText = "I'm sorry, but I couldn't find any response data. Please try again."
)
