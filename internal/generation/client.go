package generation

import "context"

// Client dispatches a prompt to a remote LLM endpoint and returns the raw
// completion text with surrounding whitespace stripped. Implementations
// hold a single long-lived connection handle configured at construction
// and are safe for concurrent use.
//
// Errors are reported through the package sentinels: ErrRateLimited when
// the provider throttles the request, ErrProviderUnavailable for every
// other transport or provider-side failure.
type Client interface {
	// Complete sends the prompt and returns the model's raw reply.
	Complete(ctx context.Context, prompt string) (string, error)

	// ModelID returns the model identifier this client is configured with.
	ModelID() string
}
