// Package gemini implements the generation.Client interface against
// Google's Gemini API using the official genai SDK.
package gemini
