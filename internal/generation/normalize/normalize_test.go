package normalize

import (
	"encoding/json"
	"testing"

	"github.com/mohammadsarwary/anki-ai-service/internal/domain"
	"github.com/mohammadsarwary/anki-ai-service/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no_fence",
			input:    `{"front": "hello"}`,
			expected: `{"front": "hello"}`,
		},
		{
			name:     "json_fence",
			input:    "```json\n{\"front\": \"hello\"}\n```",
			expected: `{"front": "hello"}`,
		},
		{
			name:     "plain_fence",
			input:    "```\n{\"front\": \"hello\"}\n```",
			expected: `{"front": "hello"}`,
		},
		{
			name:     "leading_fence_only",
			input:    "```json\n{\"front\": \"hello\"}",
			expected: `{"front": "hello"}`,
		},
		{
			name:     "trailing_fence_only",
			input:    "{\"front\": \"hello\"}\n```",
			expected: `{"front": "hello"}`,
		},
		{
			name:     "surrounding_whitespace",
			input:    "  \n```json\n{}\n```  \n",
			expected: `{}`,
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StripCodeFence(tc.input))
		})
	}
}

func TestCard_FenceAndNoFenceNormalizeIdentically(t *testing.T) {
	t.Parallel()

	bare := `{"front": "ephemeral", "difficulty": "easy"}`
	fenced := "```json\n" + bare + "\n```"

	fromBare, err := Card(bare, "ephemeral")
	require.NoError(t, err)
	fromFenced, err := Card(fenced, "ephemeral")
	require.NoError(t, err)

	assert.Equal(t, fromBare, fromFenced)
}

func TestCard_MinimalObjectGetsDefaults(t *testing.T) {
	t.Parallel()

	card, err := Card(`{"front": "ephemeral", "difficulty": "hard"}`, "ephemeral")
	require.NoError(t, err)

	assert.Equal(t, "ephemeral", card.Front)
	assert.Equal(t, domain.DifficultyHard, card.Difficulty)
	assert.Equal(t, "", card.Back.Definition)
	assert.Nil(t, card.Back.Pronunciation)
	assert.Nil(t, card.Back.PartOfSpeech)
	assert.Nil(t, card.Back.Usage)
	assert.Nil(t, card.Back.MemoryTip)
	require.NotNil(t, card.Back.Examples)
	assert.Empty(t, card.Back.Examples)
}

func TestCard_SerializedEnvelopeIsComplete(t *testing.T) {
	t.Parallel()

	card, err := Card(`{"front": "ephemeral"}`, "ephemeral")
	require.NoError(t, err)

	body, err := json.Marshal(card)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))

	back, ok := decoded["back"].(map[string]any)
	require.True(t, ok, "back must serialize as an object")

	// All six keys present even when the provider sent none of them.
	for _, key := range []string{"definition", "pronunciation", "part_of_speech", "usage", "examples", "memory_tip"} {
		_, present := back[key]
		assert.True(t, present, "back.%s must always be present", key)
	}
	assert.Equal(t, []any{}, back["examples"], "examples must serialize as [], not null")
	assert.Nil(t, back["pronunciation"])
}

func TestCard_PronunciationWithoutHintSerializesNullHint(t *testing.T) {
	t.Parallel()

	raw := `{"front": "ephemeral", "back": {"definition": "d", "pronunciation": {"text": "ih-FEM-er-uhl"}}}`
	card, err := Card(raw, "ephemeral")
	require.NoError(t, err)

	body, err := json.Marshal(card)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))

	back := decoded["back"].(map[string]any)
	pron, ok := back["pronunciation"].(map[string]any)
	require.True(t, ok)

	hint, present := pron["hint"]
	assert.True(t, present, "hint key must be present even when absent from the reply")
	assert.Nil(t, hint)
}

func TestCard_MissingFrontFallsBackToTerm(t *testing.T) {
	t.Parallel()

	card, err := Card(`{"difficulty": "easy"}`, "serendipity")
	require.NoError(t, err)
	assert.Equal(t, "serendipity", card.Front)
}

func TestCard_MissingDifficultyDefaultsToMedium(t *testing.T) {
	t.Parallel()

	card, err := Card(`{"front": "x"}`, "x")
	require.NoError(t, err)
	assert.Equal(t, domain.DifficultyMedium, card.Difficulty)
}

func TestCard_UnrecognizedDifficultyPassesThrough(t *testing.T) {
	t.Parallel()

	card, err := Card(`{"front": "x", "difficulty": "brutal"}`, "x")
	require.NoError(t, err)
	assert.Equal(t, "brutal", card.Difficulty)
}

func TestCard_FullBackIsMapped(t *testing.T) {
	t.Parallel()

	raw := `{
		"front": "ephemeral",
		"difficulty": "medium",
		"back": {
			"definition": "lasting a very short time",
			"pronunciation": {
				"text": "ih-FEM-er-uhl",
				"hint": "stress on second syllable",
				"tts": {"text": "ephemeral", "lang": "en-GB"}
			},
			"part_of_speech": "adjective",
			"usage": "describes fleeting things",
			"examples": [
				{"text": "Cherry blossoms are ephemeral.", "tts": {"text": "Cherry blossoms are ephemeral.", "lang": "en-US"}},
				{"text": "Fame is ephemeral.", "tts": null}
			],
			"memory_tip": "think of mayflies"
		}
	}`

	card, err := Card(raw, "ephemeral")
	require.NoError(t, err)

	assert.Equal(t, "lasting a very short time", card.Back.Definition)
	require.NotNil(t, card.Back.Pronunciation)
	assert.Equal(t, "ih-FEM-er-uhl", card.Back.Pronunciation.Text)
	require.NotNil(t, card.Back.Pronunciation.Hint)
	assert.Equal(t, "stress on second syllable", *card.Back.Pronunciation.Hint)
	require.NotNil(t, card.Back.Pronunciation.TTS)
	assert.Equal(t, "en-GB", card.Back.Pronunciation.TTS.Lang)
	require.NotNil(t, card.Back.PartOfSpeech)
	assert.Equal(t, "adjective", *card.Back.PartOfSpeech)
	require.Len(t, card.Back.Examples, 2)
	assert.Nil(t, card.Back.Examples[1].TTS)
}

func TestCard_TTSWithoutLangDefaultsToEnUS(t *testing.T) {
	t.Parallel()

	raw := `{"front": "x", "back": {"pronunciation": {"text": "x", "tts": {"text": "x"}}}}`
	card, err := Card(raw, "x")
	require.NoError(t, err)

	require.NotNil(t, card.Back.Pronunciation)
	require.NotNil(t, card.Back.Pronunciation.TTS)
	assert.Equal(t, "en-US", card.Back.Pronunciation.TTS.Lang)
}

func TestCard_MissingBackYieldsDefaults(t *testing.T) {
	t.Parallel()

	card, err := Card(`{"front": "x", "difficulty": "easy"}`, "x")
	require.NoError(t, err)

	assert.Equal(t, domain.NewCardBack(), card.Back)
}

func TestCard_MalformedJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "not_json", input: "invalid json"},
		{name: "empty", input: ""},
		{name: "truncated", input: `{"front": "x"`},
		{name: "fenced_garbage", input: "```json\nnot json at all\n```"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			card, err := Card(tc.input, "x")
			require.Error(t, err)
			assert.ErrorIs(t, err, generation.ErrInvalidResponse)
			assert.Nil(t, card)
		})
	}
}

func TestCards_BareArrayEnvelope(t *testing.T) {
	t.Parallel()

	raw := `[{"front": "uno"}, {"front": "dos"}, {"front": "tres"}]`
	cards, err := Cards(raw)
	require.NoError(t, err)

	require.Len(t, cards, 3)
	assert.Equal(t, "uno", cards[0].Front)
	assert.Equal(t, "dos", cards[1].Front)
	assert.Equal(t, "tres", cards[2].Front)
}

func TestCards_ObjectEnvelope(t *testing.T) {
	t.Parallel()

	raw := `{"cards": [{"front": "uno"}, {"front": "dos"}]}`
	cards, err := Cards(raw)
	require.NoError(t, err)

	require.Len(t, cards, 2)
	assert.Equal(t, "uno", cards[0].Front)
}

func TestCards_BothEnvelopesNormalizeIdentically(t *testing.T) {
	t.Parallel()

	bare := `[{"front": "uno", "difficulty": "easy"}]`
	wrapped := `{"cards": [{"front": "uno", "difficulty": "easy"}]}`

	fromBare, err := Cards(bare)
	require.NoError(t, err)
	fromWrapped, err := Cards(wrapped)
	require.NoError(t, err)

	assert.Equal(t, fromBare, fromWrapped)
}

func TestCards_FencedArray(t *testing.T) {
	t.Parallel()

	cards, err := Cards("```json\n[{\"front\": \"uno\"}]\n```")
	require.NoError(t, err)
	require.Len(t, cards, 1)
}

func TestCards_EmptyArrayIsValid(t *testing.T) {
	t.Parallel()

	cards, err := Cards(`[]`)
	require.NoError(t, err)
	assert.Empty(t, cards)
	assert.NotNil(t, cards)
}

func TestCards_MalformedJSON(t *testing.T) {
	t.Parallel()

	cards, err := Cards("this is not json")
	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrInvalidResponse)
	assert.Nil(t, cards)
}

func TestPractice_HappyPath(t *testing.T) {
	t.Parallel()

	raw := `{
		"naturalness_score": 82,
		"feedback_message": "Nice natural usage!",
		"suggestions": ["Sentence one.", "Sentence two.", "Sentence three."],
		"grammar_notes": null,
		"encouragement": "Keep practicing!"
	}`

	eval, err := Practice(raw)
	require.NoError(t, err)

	assert.Equal(t, 82, eval.NaturalnessScore)
	assert.Equal(t, "Nice natural usage!", eval.FeedbackMessage)
	require.Len(t, eval.Suggestions, 3)
	assert.Nil(t, eval.GrammarNotes)
	assert.Equal(t, "Keep practicing!", eval.Encouragement)
}

func TestPractice_InvalidPayloads(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "not_json", input: "invalid json"},
		{
			name:  "score_above_range",
			input: `{"naturalness_score": 101, "feedback_message": "", "suggestions": ["a","b","c"], "encouragement": ""}`,
		},
		{
			name:  "score_below_range",
			input: `{"naturalness_score": -1, "feedback_message": "", "suggestions": ["a","b","c"], "encouragement": ""}`,
		},
		{
			name:  "two_suggestions",
			input: `{"naturalness_score": 50, "feedback_message": "", "suggestions": ["a","b"], "encouragement": ""}`,
		},
		{
			name:  "four_suggestions",
			input: `{"naturalness_score": 50, "feedback_message": "", "suggestions": ["a","b","c","d"], "encouragement": ""}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			eval, err := Practice(tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, generation.ErrInvalidResponse)
			assert.Nil(t, eval)
		})
	}
}
