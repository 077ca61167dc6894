package quiz

import "github.com/PuerkitoBio/goquery"

// ExtractedQuestion is one multiple choice question scraped from a page.
type ExtractedQuestion struct {
	QuestionText string   `json:"questionText"`
	Options      []string `json:"options"`
	// nil when the page does not reveal the answer in a way the strategy
	// understands.
	CorrectAnswer *string `json:"correctAnswer"`
}

// Answer returns the correct answer or "" when it is unknown.
func (q ExtractedQuestion) Answer() string {
	if q.CorrectAnswer == nil {
		return ""
	}
	return *q.CorrectAnswer
}

func answer(s string) *string {
	return &s
}

// Strategy recognizes one page layout and turns every matching fragment into
// a question. Strategies are pure, the same document always yields the same
// questions.
type Strategy struct {
	Name    string
	Extract func(doc *goquery.Document) []ExtractedQuestion
}
