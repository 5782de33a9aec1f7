package domain

// Difficulty is the estimated difficulty of a generated flashcard.
// The provider supplies it and the normalizer defaults it to
// DifficultyMedium when absent; the value is not otherwise enforced.
type Difficulty = string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Level is the learner proficiency level supplied with a generation request.
type Level = string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// TTS carries the information a downstream audio system needs to render
// a word or sentence as speech.
type TTS struct {
	// Text is the natural (not phonetic) form to synthesize.
	Text string `json:"text"`

	// Lang is the TTS engine language code, e.g. "en-US".
	Lang string `json:"lang"`
}

// Pronunciation holds the visual pronunciation guide and optional TTS
// configuration for a term.
type Pronunciation struct {
	Text string  `json:"text"`
	Hint *string `json:"hint"`
	TTS  *TTS    `json:"tts"`
}

// Example is a single example sentence demonstrating usage of the term.
type Example struct {
	Text string `json:"text"`
	TTS  *TTS   `json:"tts"`
}

// CardBack is the structured content on the back side of a flashcard.
// Every key is always present in the serialized form: optional objects
// render as null and Examples renders as an empty array, never as a
// missing key.
type CardBack struct {
	Definition    string         `json:"definition"`
	Pronunciation *Pronunciation `json:"pronunciation"`
	PartOfSpeech  *string        `json:"part_of_speech"`
	Usage         *string        `json:"usage"`
	Examples      []Example      `json:"examples"`
	MemoryTip     *string        `json:"memory_tip"`
}

// FlashCard is the canonical output record of the generation pipeline.
type FlashCard struct {
	Front      string     `json:"front"`
	Back       CardBack   `json:"back"`
	Difficulty Difficulty `json:"difficulty"`
}

// NewCardBack returns a CardBack with all defaults applied: empty
// definition, nil optional fields, and a non-nil empty examples slice.
func NewCardBack() CardBack {
	return CardBack{Examples: []Example{}}
}
