// Package api provides the HTTP handlers of the generation gateway.
package api

import "github.com/mohammadsarwary/anki-ai-service/internal/domain"

// Request defaults applied when optional fields are omitted.
const (
	DefaultLanguage       = "en"
	DefaultTargetLanguage = "fa"
	DefaultLevel          = domain.LevelBeginner
	DefaultTopicCount     = 5
)

// GenerateCardRequest defines the payload for the single-card endpoint.
type GenerateCardRequest struct {
	Term           string `json:"term"            validate:"required,max=500"`
	Language       string `json:"language"        validate:"min=2,max=10"`
	TargetLanguage string `json:"target_language" validate:"min=2,max=10"`
	Level          string `json:"level"           validate:"oneof=beginner intermediate advanced"`
}

// Normalize fills defaults for omitted optional fields.
func (r *GenerateCardRequest) Normalize() {
	if r.Language == "" {
		r.Language = DefaultLanguage
	}
	if r.TargetLanguage == "" {
		r.TargetLanguage = DefaultTargetLanguage
	}
	if r.Level == "" {
		r.Level = DefaultLevel
	}
}

// GenerateFromTopicRequest defines the payload for the topic batch endpoint.
type GenerateFromTopicRequest struct {
	Topic          string `json:"topic"           validate:"required,max=500"`
	Count          int    `json:"count"           validate:"gte=1,lte=50"`
	Level          string `json:"level"           validate:"oneof=beginner intermediate advanced"`
	Language       string `json:"language"        validate:"min=2,max=10"`
	TargetLanguage string `json:"target_language" validate:"min=2,max=10"`
}

// Normalize fills defaults for omitted optional fields.
func (r *GenerateFromTopicRequest) Normalize() {
	if r.Count == 0 {
		r.Count = DefaultTopicCount
	}
	if r.Level == "" {
		r.Level = DefaultLevel
	}
	if r.Language == "" {
		r.Language = DefaultLanguage
	}
	if r.TargetLanguage == "" {
		r.TargetLanguage = DefaultTargetLanguage
	}
}

// GeneratePracticeRequest defines the payload for the practice
// sentence evaluation endpoint.
type GeneratePracticeRequest struct {
	TargetWord   string `json:"target_word"   validate:"required,max=500"`
	UserSentence string `json:"user_sentence" validate:"required,max=1000"`
	Language     string `json:"language"      validate:"min=2,max=10"`
}

// Normalize fills defaults for omitted optional fields.
func (r *GeneratePracticeRequest) Normalize() {
	if r.Language == "" {
		r.Language = DefaultLanguage
	}
}

// TopicCardsResponse wraps the batch endpoint's card list.
type TopicCardsResponse struct {
	Cards []domain.FlashCard `json:"cards"`
}

// HealthResponse is the body returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
