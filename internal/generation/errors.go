package generation

import "errors"

// Common errors returned by the generation pipeline.
var (
	// ErrRateLimited is returned when the LLM provider reports quota or
	// rate exhaustion. Surfaced to callers as HTTP 429.
	ErrRateLimited = errors.New("ai provider rate limit exceeded")

	// ErrProviderUnavailable is returned for transport failures, timeouts,
	// and provider-side errors. Surfaced to callers as HTTP 502.
	ErrProviderUnavailable = errors.New("ai provider error")

	// ErrInvalidResponse is returned when the provider reply cannot be
	// parsed into the expected schema. Treated as a provider-quality
	// failure and surfaced as HTTP 502.
	ErrInvalidResponse = errors.New("invalid response from ai provider")

	// ErrInvalidConfig is returned when a provider client is constructed
	// with incomplete configuration.
	ErrInvalidConfig = errors.New("invalid provider configuration")
)
