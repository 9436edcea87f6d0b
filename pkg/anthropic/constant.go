package anthropic

import "time"

const (
	// DefaultModel is the default Anthropic model.
	DefaultModel = "claude-3-haiku-20240307"

	// DefaultBaseURL is the default Anthropic API endpoint.
	DefaultBaseURL = "https://api.anthropic.com/v1"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxTokens caps response length when the caller does not set one.
	DefaultMaxTokens = 1024

	// APIVersion is sent in the anthropic-version header.
	APIVersion = "2023-06-01"
)
