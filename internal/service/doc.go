// Package service contains the application-specific use cases of the
// generation gateway. It orchestrates the prompt builder, the configured
// provider client and the response normalizer to turn API requests into
// validated flashcard structures.
//
// The service layer depends on the generation.Client interface, never on a
// concrete provider, so the HTTP layer and tests can swap providers freely.
// Provider and parsing failures surface as the sentinel errors defined in
// internal/generation; the API layer maps those to HTTP status codes.
package service
