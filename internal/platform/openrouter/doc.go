// Package openrouter implements the generation.Client interface against
// OpenAI-compatible chat-completions gateways such as OpenRouter and
// Cerebras, selected by base URL.
package openrouter
