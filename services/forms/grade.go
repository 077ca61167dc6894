package forms

import (
	"eformify-backend/lib/textutil"
)

// FreeTextThreshold is the minimum similarity for a free text answer to be
// accepted.
const FreeTextThreshold = 0.9

func findQuestion(questions []Question, text string) (Question, bool) {
	for _, q := range questions {
		if q.QuestionText == text {
			return q, true
		}
	}
	normalized := textutil.NormalizeName(text)
	for _, q := range questions {
		if textutil.NormalizeName(q.QuestionText) == normalized {
			return q, true
		}
	}
	return Question{}, false
}

// Grade decides whether `given` answers the form's question with the text
// `question`. Questions with options need an exact match ignoring case and
// whitespace, free text questions only need to be similar enough. Unknown
// questions and questions without an answer key are never correct.
func Grade(questions []Question, question, given string) bool {
	q, ok := findQuestion(questions, question)
	if !ok || q.Answer == "" {
		return false
	}
	if len(q.Options) > 0 {
		return textutil.NormalizeName(q.Answer) == textutil.NormalizeName(given)
	}
	return textutil.Similarity(q.Answer, given) >= FreeTextThreshold
}
