// Package redact removes credentials from strings before they are logged.
// Provider replies and prompts are fair game for diagnostics, but API
// keys and bearer tokens must never reach the log stream.
package redact

import "regexp"

// Placeholders substituted for matched credentials.
const (
	RedactedKeyPlaceholder    = "[REDACTED_KEY]"
	RedactedBearerPlaceholder = "[REDACTED_TOKEN]"
)

var (
	// Provider API key shapes seen in this deployment: Google ("AIza..."),
	// Cerebras ("csk-..."), OpenRouter ("sk-or-...") and generic sk-/key=
	// assignments.
	apiKeyRegex = regexp.MustCompile(
		`(?i)\b(AIza[0-9A-Za-z_-]{30,}|(?:csk|sk)(?:-or)?-[A-Za-z0-9_-]{16,}|(?:api[_-]?key|secret|token)['"\s:=]+[A-Za-z0-9_\-.~+/]{8,})`,
	)

	// Authorization header values.
	bearerRegex = regexp.MustCompile(`(?i)Bearer\s+[A-Za-z0-9_\-.~+/=|]+`)
)

// String redacts credentials from the input string.
func String(input string) string {
	if input == "" {
		return input
	}
	result := bearerRegex.ReplaceAllString(input, RedactedBearerPlaceholder)
	result = apiKeyRegex.ReplaceAllString(result, RedactedKeyPlaceholder)
	return result
}

// Error redacts credentials from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
