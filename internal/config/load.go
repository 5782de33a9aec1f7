package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables with the ANKI_
// prefix (nested keys joined with underscores, e.g. ANKI_SERVER_PORT,
// ANKI_LLM_OPENROUTER_API_KEY), applies defaults, and validates the
// result. Returns a populated Config or an error describing what failed.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("ANKI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv alone does not surface env-only keys through
	// Unmarshal; binding each known key makes them visible.
	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := validateProvider(cfg.LLM); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// configKeys lists every key Load understands, in viper dot notation.
var configKeys = []string{
	"app.name",
	"app.version",
	"app.debug",
	"server.port",
	"server.log_level",
	"llm.provider",
	"llm.timeout_seconds",
	"llm.max_tokens",
	"llm.gemini.api_key",
	"llm.gemini.model",
	"llm.openrouter.api_key",
	"llm.openrouter.base_url",
	"llm.openrouter.model",
	"llm.openrouter.referer",
	"llm.openrouter.site_title",
	"auth.base_url",
	"auth.timeout_seconds",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "anki-ai-service")
	v.SetDefault("app.version", "0.1.0")
	v.SetDefault("app.debug", false)

	v.SetDefault("server.port", 8000)
	v.SetDefault("server.log_level", "info")

	v.SetDefault("llm.provider", "openrouter")
	v.SetDefault("llm.timeout_seconds", 30)
	v.SetDefault("llm.max_tokens", 2000)
	v.SetDefault("llm.gemini.model", "gemini-2.0-flash")
	v.SetDefault("llm.openrouter.base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("llm.openrouter.model", "z-ai/glm-4.5-air:free")
	v.SetDefault("llm.openrouter.site_title", "anki-ai")

	v.SetDefault("auth.timeout_seconds", 5)
}

// validateProvider checks that the selected provider carries the
// credentials it needs; struct tags cannot express this conditional.
func validateProvider(cfg LLMConfig) error {
	switch cfg.Provider {
	case ProviderGemini:
		if cfg.Gemini.APIKey == "" {
			return fmt.Errorf("llm.gemini.api_key is required for the gemini provider")
		}
	case ProviderOpenRouter:
		if cfg.OpenRouter.APIKey == "" {
			return fmt.Errorf("llm.openrouter.api_key is required for the openrouter provider")
		}
	}
	return nil
}
