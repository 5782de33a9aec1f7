// Package generation defines the boundary between the application core
// and external LLM providers. It holds the Client interface that concrete
// providers (Gemini, OpenRouter) implement, plus the sentinel errors the
// rest of the application matches on with errors.Is. The packages below it
// carry the pure halves of the pipeline: prompt construction and response
// normalization.
package generation
