package domain

// PracticeSuggestionCount is the number of alternative sentences a
// practice evaluation must contain.
const PracticeSuggestionCount = 3

// PracticeEvaluation is the result of evaluating a learner's practice
// sentence for a target word.
type PracticeEvaluation struct {
	// NaturalnessScore rates how naturally the target word was used,
	// from 0 (incorrect) to 100 (native-like).
	NaturalnessScore int `json:"naturalness_score"`

	// FeedbackMessage is a short encouraging message about the sentence.
	FeedbackMessage string `json:"feedback_message"`

	// Suggestions holds exactly PracticeSuggestionCount alternative
	// sentences showing better usage of the word.
	Suggestions []string `json:"suggestions"`

	// GrammarNotes is a brief grammar tip, or nil when the sentence
	// needs none.
	GrammarNotes *string `json:"grammar_notes"`

	// Encouragement is a motivational closing message.
	Encouragement string `json:"encouragement"`
}
