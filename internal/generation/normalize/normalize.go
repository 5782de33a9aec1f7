// Package normalize turns raw LLM reply text into canonical domain
// records. Providers inconsistently wrap JSON in markdown fences, omit
// optional fields, or return one of two batch envelope shapes; this
// package absorbs all of that so callers only ever see a fully populated
// record or generation.ErrInvalidResponse.
package normalize

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mohammadsarwary/anki-ai-service/internal/domain"
	"github.com/mohammadsarwary/anki-ai-service/internal/generation"
)

// defaultTTSLang is used when a tts block carries text but no language.
const defaultTTSLang = "en-US"

// rawTTS mirrors the provider's tts block with every field optional.
type rawTTS struct {
	Text string  `json:"text"`
	Lang *string `json:"lang"`
}

type rawPronunciation struct {
	Text string  `json:"text"`
	Hint *string `json:"hint"`
	TTS  *rawTTS `json:"tts"`
}

type rawExample struct {
	Text string  `json:"text"`
	TTS  *rawTTS `json:"tts"`
}

type rawBack struct {
	Definition    string            `json:"definition"`
	Pronunciation *rawPronunciation `json:"pronunciation"`
	PartOfSpeech  *string           `json:"part_of_speech"`
	Usage         *string           `json:"usage"`
	Examples      []rawExample      `json:"examples"`
	MemoryTip     *string           `json:"memory_tip"`
}

type rawCard struct {
	Front      string   `json:"front"`
	Difficulty string   `json:"difficulty"`
	Back       *rawBack `json:"back"`
}

// cardsEnvelope is the object-shaped batch envelope some providers emit.
type cardsEnvelope struct {
	Cards []rawCard `json:"cards"`
}

// StripCodeFence removes an optional markdown code-fence wrapper from the
// reply: a leading ``` or ```json line and a trailing ``` line. Partial
// fences (only one side present) are stripped too, since providers are
// not consistent about either end.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// Card normalizes a single-card reply. The term is used as the front
// when the provider omits one.
func Card(raw, term string) (*domain.FlashCard, error) {
	cleaned := StripCodeFence(raw)

	var rc rawCard
	if err := json.Unmarshal([]byte(cleaned), &rc); err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrInvalidResponse, err)
	}

	card := buildCard(rc, term)
	return &card, nil
}

// Cards normalizes a batch reply. Both envelope shapes are accepted: a
// bare JSON array of card objects, or an object wrapping a "cards" array.
// Provider order is preserved; length is whatever the provider returned.
func Cards(raw string) ([]domain.FlashCard, error) {
	cleaned := StripCodeFence(raw)

	var rawCards []rawCard
	if strings.HasPrefix(cleaned, "[") {
		if err := json.Unmarshal([]byte(cleaned), &rawCards); err != nil {
			return nil, fmt.Errorf("%w: %v", generation.ErrInvalidResponse, err)
		}
	} else {
		var env cardsEnvelope
		if err := json.Unmarshal([]byte(cleaned), &env); err != nil {
			return nil, fmt.Errorf("%w: %v", generation.ErrInvalidResponse, err)
		}
		rawCards = env.Cards
	}

	cards := make([]domain.FlashCard, 0, len(rawCards))
	for _, rc := range rawCards {
		cards = append(cards, buildCard(rc, ""))
	}
	return cards, nil
}

// Practice normalizes a practice-evaluation reply. Unlike card
// difficulty, the score range and suggestion count are part of the
// contract and are enforced here.
func Practice(raw string) (*domain.PracticeEvaluation, error) {
	cleaned := StripCodeFence(raw)

	var eval domain.PracticeEvaluation
	if err := json.Unmarshal([]byte(cleaned), &eval); err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrInvalidResponse, err)
	}

	if eval.NaturalnessScore < 0 || eval.NaturalnessScore > 100 {
		return nil, fmt.Errorf("%w: naturalness score %d out of range",
			generation.ErrInvalidResponse, eval.NaturalnessScore)
	}
	if len(eval.Suggestions) != domain.PracticeSuggestionCount {
		return nil, fmt.Errorf("%w: expected %d suggestions, got %d",
			generation.ErrInvalidResponse, domain.PracticeSuggestionCount, len(eval.Suggestions))
	}

	return &eval, nil
}

// buildCard maps a raw card onto the canonical shape, filling every
// missing leaf with its documented default.
func buildCard(rc rawCard, fallbackFront string) domain.FlashCard {
	card := domain.FlashCard{
		Front:      rc.Front,
		Difficulty: rc.Difficulty,
		Back:       domain.NewCardBack(),
	}
	if card.Front == "" {
		card.Front = fallbackFront
	}
	if card.Difficulty == "" {
		card.Difficulty = domain.DifficultyMedium
	}
	if rc.Back == nil {
		return card
	}

	card.Back.Definition = rc.Back.Definition
	card.Back.PartOfSpeech = rc.Back.PartOfSpeech
	card.Back.Usage = rc.Back.Usage
	card.Back.MemoryTip = rc.Back.MemoryTip

	if p := rc.Back.Pronunciation; p != nil {
		pron := &domain.Pronunciation{Text: p.Text, Hint: p.Hint}
		pron.TTS = buildTTS(p.TTS)
		card.Back.Pronunciation = pron
	}

	for _, ex := range rc.Back.Examples {
		card.Back.Examples = append(card.Back.Examples, domain.Example{
			Text: ex.Text,
			TTS:  buildTTS(ex.TTS),
		})
	}

	return card
}

func buildTTS(rt *rawTTS) *domain.TTS {
	if rt == nil {
		return nil
	}
	tts := &domain.TTS{Text: rt.Text, Lang: defaultTTSLang}
	if rt.Lang != nil && *rt.Lang != "" {
		tts.Lang = *rt.Lang
	}
	return tts
}
