// Package prompt constructs the instruction strings sent to LLM
// providers. Construction is pure string templating with no I/O, and is
// deterministic for identical inputs so prompts can be golden-tested.
package prompt

import (
	"strings"
	"text/template"
)

// cardData is the input for the single-card template.
type cardData struct {
	Term           string
	Language       string
	TargetLanguage string
	Level          string
}

// topicData is the input for the batch template.
type topicData struct {
	Topic          string
	Count          int
	Level          string
	Language       string
	TargetLanguage string
}

// practiceData is the input for the practice-evaluation template.
type practiceData struct {
	TargetWord   string
	UserSentence string
	Language     string
}

const cardTemplateText = `You are a JSON API. You MUST respond with ONLY valid JSON.

CRITICAL RULES:
1. Start your response with { and end with }
2. Do NOT write any thinking, reasoning, or explanation
3. Do NOT use markdown code blocks
4. NO HTML tags, NO emojis, NO markdown formatting anywhere in the response

Generate a flashcard for "{{.Term}}" in this EXACT format:

{
  "front": "{{.Term}}",
  "difficulty": "easy|medium|hard",
  "back": {
    "definition": "Simple and friendly definition in {{.TargetLanguage}}",
    "pronunciation": {
      "text": "Written pronunciation guide (not IPA)",
      "hint": "Helpful pronunciation hint or null",
      "tts": { "text": "{{.Term}}", "lang": "{{.Language}}" }
    },
    "part_of_speech": "Part of speech in {{.TargetLanguage}} or null",
    "usage": "How to use this word, in {{.TargetLanguage}}, or null",
    "examples": [
      { "text": "Example sentence in {{.Language}}", "tts": { "text": "Example sentence in {{.Language}}", "lang": "{{.Language}}" } }
    ],
    "memory_tip": "Short memory tip in {{.TargetLanguage}} or null"
  }
}

Requirements:
- difficulty must be exactly "easy", "medium", or "hard"
- definition, part_of_speech, usage and memory_tip must be written in {{.TargetLanguage}}
- examples must be written in {{.Language}} and may be an empty array
- pronunciation, part_of_speech, usage and memory_tip can be null if not available
- if pronunciation.tts is present, tts.text MUST be the natural word (NOT phonetic)

INPUT:
- Word: "{{.Term}}"
- Level: "{{.Level}}"
- Source Language: "{{.Language}}"
- Target Language: "{{.TargetLanguage}}"

RESPOND WITH JSON ONLY:`

const topicTemplateText = `You are an expert language learning flashcard generator. You MUST respond with ONLY valid JSON.

TASK: Generate exactly {{.Count}} flashcards about "{{.Topic}}" for {{.Level}} level learners.

OUTPUT FORMAT: Return ONLY valid JSON with this structure:
{
  "cards": [
    {
      "front": "word or phrase",
      "difficulty": "easy|medium|hard",
      "back": {
        "definition": "Definition in {{.TargetLanguage}}",
        "pronunciation": {
          "text": "pronunciation guide",
          "hint": "helpful hint or null",
          "tts": { "text": "word", "lang": "{{.Language}}" }
        },
        "part_of_speech": "noun|verb|adjective|idiom|phrase",
        "usage": "How to use this word",
        "examples": [{ "text": "Example sentence", "tts": { "text": "Example sentence", "lang": "{{.Language}}" } }],
        "memory_tip": "Memory technique"
      }
    }
  ]
}

LEVEL GUIDELINES:
- beginner: Common words, simple definitions, basic examples
- intermediate: Everyday vocabulary, moderate complexity
- advanced: Academic words, nuanced definitions, complex examples

QUALITY RULES:
- The cards array MUST contain exactly {{.Count}} items
- Each card MUST have a UNIQUE word (no duplicate terms)
- Words must be directly relevant to "{{.Topic}}"
- Examples must be natural, practical, and written in {{.Language}}
- Definitions, usage notes and memory tips must be written in {{.TargetLanguage}}

Generate {{.Count}} unique flashcards now:`

const practiceTemplateText = `You are a helpful language learning assistant evaluating a student's sentence creation practice.

Target word: {{.TargetWord}}
User's sentence: {{.UserSentence}}
Language: {{.Language}}

Your task:
1. Evaluate how naturally the user used the target word in their sentence
2. Assign a naturalness score from 0-100 where:
   - 90-100: Excellent, native-like usage
   - 75-89: Very good, natural and correct
   - 60-74: Good, understandable but could be improved
   - 40-59: Okay, awkward or unnatural phrasing
   - 0-39: Poor, incorrect usage or doesn't make sense
3. Provide exactly 3 alternative example sentences showing better usage of the word
4. Give encouraging feedback - NEVER be harsh or discouraging
5. Consider grammar, context, and naturalness

Return a JSON object with:
- naturalness_score (integer 0-100): The naturalness score
- feedback_message (string): Short encouraging message (max 100 chars)
- suggestions (array): Exactly 3 example sentences showing better usage
- grammar_notes (string|null): Brief grammar tip if needed, null if sentence is perfect
- encouragement (string): Motivational closing message

IMPORTANT:
- Always be positive and encouraging
- Focus on learning, not grading
- Keep suggestions simple and clear
- Return ONLY valid JSON, no markdown formatting`

var (
	cardTemplate     = template.Must(template.New("card").Parse(cardTemplateText))
	topicTemplate    = template.Must(template.New("topic").Parse(topicTemplateText))
	practiceTemplate = template.Must(template.New("practice").Parse(practiceTemplateText))
)

func render(t *template.Template, data any) string {
	var b strings.Builder
	// Templates only reference fields that exist on their data structs,
	// so execution cannot fail at runtime.
	if err := t.Execute(&b, data); err != nil {
		panic(err)
	}
	return b.String()
}

// Card builds the instruction for generating a single flashcard.
// Definition, part of speech, usage and memory tip are requested in
// targetLanguage; example sentences stay in the source language.
func Card(term, language, targetLanguage, level string) string {
	return render(cardTemplate, cardData{
		Term:           term,
		Language:       language,
		TargetLanguage: targetLanguage,
		Level:          level,
	})
}

// Topic builds the instruction for generating count flashcards about a
// topic. The prompt demands exactly count unique terms wrapped in a
// {"cards": [...]} object; the normalizer tolerates providers that reply
// with a bare array anyway.
func Topic(topic string, count int, level, language, targetLanguage string) string {
	return render(topicTemplate, topicData{
		Topic:          topic,
		Count:          count,
		Level:          level,
		Language:       language,
		TargetLanguage: targetLanguage,
	})
}

// Practice builds the instruction for evaluating a learner's practice
// sentence for a target word.
func Practice(targetWord, userSentence, language string) string {
	return render(practiceTemplate, practiceData{
		TargetWord:   targetWord,
		UserSentence: userSentence,
		Language:     language,
	})
}
