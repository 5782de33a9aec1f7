package config

import "time"

// Provider names accepted by LLMConfig.Provider.
const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
)

// Config holds all application configuration.
// It is loaded once at process start, validated, and passed explicitly
// into component constructors; nothing mutates it afterwards.
type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth"   validate:"required"`
}

// AppConfig identifies the service instance.
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Debug   bool   `mapstructure:"debug"`
}

// ServerConfig contains all HTTP-server-related settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains provider selection and the settings shared by all
// provider clients. Exactly one provider is active per process.
type LLMConfig struct {
	// Provider selects the active backend: "gemini" or "openrouter".
	Provider string `mapstructure:"provider" validate:"required,oneof=gemini openrouter"`

	// TimeoutSeconds bounds every provider call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"required,gt=0"`

	// MaxTokens caps the completion size requested from the provider.
	MaxTokens int `mapstructure:"max_tokens" validate:"required,gt=0"`

	Gemini     GeminiConfig     `mapstructure:"gemini"`
	OpenRouter OpenRouterConfig `mapstructure:"openrouter"`
}

// GeminiConfig holds credentials for the direct Gemini backend.
type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// OpenRouterConfig holds credentials and attribution headers for an
// OpenAI-compatible gateway backend.
type OpenRouterConfig struct {
	APIKey    string `mapstructure:"api_key"`
	BaseURL   string `mapstructure:"base_url" validate:"omitempty,url"`
	Model     string `mapstructure:"model"`
	Referer   string `mapstructure:"referer"`
	SiteTitle string `mapstructure:"site_title"`
}

// AuthConfig locates the remote identity service that verifies bearer
// tokens.
type AuthConfig struct {
	BaseURL        string `mapstructure:"base_url"        validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"required,gt=0"`
}

// LLMTimeout returns the provider-call timeout as a duration.
func (c LLMConfig) LLMTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Timeout returns the identity-service call timeout as a duration.
func (c AuthConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
