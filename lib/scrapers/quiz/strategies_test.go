package quiz

import (
	"eformify-backend/lib/htmlutil"
	"eformify-backend/lib/textutil"
	"regexp"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const tablePage = `<html><body>
<div class="mid-section">
  <table>
    <tr><td>1.</td><td>What is the capital of France?</td></tr>
    <tr><td><label><input type="radio" name="q1"> London</label></td></tr>
    <tr><td><label><input type="radio" name="q1" checked> Paris</label></td></tr>
    <tr><td><label><input type="radio" name="q1"> Rome</label></td></tr>
  </table>
  <table>
    <tr><td>2.</td><td>Largest ocean?</td></tr>
    <tr><td><label><input type="radio" name="q2"> Pacific</label></td></tr>
    <tr><td><label><input type="radio" name="q2"> Atlantic</label></td></tr>
  </table>
</div>
<div class="mid-section extra">
  <table><tr><td>x</td><td>ignored, class is not exactly mid-section</td></tr></table>
</div>
</body></html>`

const paragraphPage = `<html><body>
<p class="pq">1) Which planet is known as the Red Planet?</p>
<ol><li>Venus</li><li> Mars </li><li>Jupiter</li></ol>
<div class="testanswer"><strong>Answer:</strong> <span>Mars</span></div>
<p class="pq">2) What is H2O?</p>
<ul><li>Water</li><li>Salt</li></ul>
<div class="testanswer"><strong>answer:</strong> <span>Water</span></div>
</body></html>`

const qaBlockPage = `<html><body>
<div class="QA">
  <div class="Q">
    <span>Q1</span>
    <p>Capital of France?</p>
    <a href="#">A) London</a>
    <a href="#">B) Berlin</a>
    <a href="#" class="true">C) Paris</a>
    <a href="#">D)</a>
  </div>
  <div class="Q">
    <span>Q2</span>
    <p>Unlabelled options</p>
    <a href="#">Tokyo</a>
    <a href="#">3.14</a>
  </div>
</div>
</body></html>`

const normalQuestionPage = `<html><body>
<div class="question single-question question-type-normal">
  <div class="question-main">Which gas do plants absorb?</div>
  <div class="question-options">
    <p>A. Oxygen</p>
    <p>B.  Carbon dioxide</p>
    <p>C. Nitrogen</p>
    <p>D. Helium</p>
    <p>E. Argon</p>
    <p>Answer: B</p>
  </div>
</div>
<div class="question single-question question-type-normal">
  <div class="question-main">No answer given</div>
  <div class="question-options">
    <p>A. Yes</p>
    <p>B. No</p>
    <p>The Answer: A</p>
  </div>
</div>
</body></html>`

func parse(t testing.TB, page string) *goquery.Document {
	doc, err := htmlutil.Parse(page)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func requireQuestions(t testing.TB, expected, actual []ExtractedQuestion) {
	t.Helper()
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Fatalf("extracted questions mismatch (-want +got):\n%s", diff)
	}
}

func TestStrategiesWithoutMatches(t *testing.T) {
	doc := parse(t, `<html><body><p>nothing to see</p><table><tr><td>a</td><td>b</td></tr></table></body></html>`)
	for _, strategy := range Strategies {
		questions := strategy.Extract(doc)
		require.NotNil(t, questions, strategy.Name)
		require.Empty(t, questions, strategy.Name)
	}
}

func TestExtractTable(t *testing.T) {
	questions := ExtractTable(parse(t, tablePage))
	requireQuestions(t, []ExtractedQuestion{
		{
			QuestionText:  "What is the capital of France?",
			Options:       []string{"London", "Paris", "Rome"},
			CorrectAnswer: answer("Paris"),
		},
		{
			QuestionText:  "Largest ocean?",
			Options:       []string{"Pacific", "Atlantic"},
			CorrectAnswer: answer(""),
		},
	}, questions)
}

func TestExtractParagraph(t *testing.T) {
	questions := ExtractParagraph(parse(t, paragraphPage))
	requireQuestions(t, []ExtractedQuestion{
		{
			QuestionText:  "1) Which planet is known as the Red Planet?",
			Options:       []string{"Venus", "Mars", "Jupiter"},
			CorrectAnswer: answer("Mars"),
		},
		{
			// the label is case sensitive
			QuestionText:  "2) What is H2O?",
			Options:       []string{"Water", "Salt"},
			CorrectAnswer: answer(""),
		},
	}, questions)
}

func TestExtractParagraphMissingAnswer(t *testing.T) {
	page := `<html><body>
<p class="pq">1) No answer block here</p>
<ol><li>Fire</li><li>Ice</li></ol>
<p class="pq">2) What is H2O?</p>
<ul><li>Water</li><li>Salt</li></ul>
<div class="testanswer"><strong>Answer:</strong> <span>Water</span></div>
</body></html>`

	questions := ExtractParagraph(parse(t, page))
	requireQuestions(t, []ExtractedQuestion{
		{
			QuestionText:  "1) No answer block here",
			Options:       []string{"Fire", "Ice"},
			CorrectAnswer: answer(""),
		},
		{
			QuestionText:  "2) What is H2O?",
			Options:       []string{"Water", "Salt"},
			CorrectAnswer: answer("Water"),
		},
	}, questions)
}

func TestOptionLabels(t *testing.T) {
	cases := []struct {
		input    string
		label    *regexp.Regexp
		expected string
		ok       bool
	}{
		{input: "C) Paris", label: anchorOptionLabel, expected: "Paris", ok: true},
		{input: "3. Paris", label: anchorOptionLabel, expected: "Paris", ok: true},
		{input: "D)", label: anchorOptionLabel, expected: "", ok: true},
		{input: "A.Paris", label: anchorOptionLabel, expected: "A.Paris", ok: false},
		{input: "3.14", label: anchorOptionLabel, expected: "3.14", ok: false},
		{input: "Tokyo", label: anchorOptionLabel, expected: "Tokyo", ok: false},
		{input: "A. Oxygen", label: letterOptionLabel, expected: "Oxygen", ok: true},
		{input: "B.  Carbon dioxide", label: letterOptionLabel, expected: "Carbon dioxide", ok: true},
		{input: "E. Argon", label: letterOptionLabel, expected: "E. Argon", ok: false},
		{input: "a. Oxygen", label: letterOptionLabel, expected: "a. Oxygen", ok: false},
		{input: "A.Oxygen", label: letterOptionLabel, expected: "A.Oxygen", ok: false},
	}

	for _, test := range cases {
		rest, ok := textutil.StripLabel(test.input, test.label)
		require.Equal(t, test.expected, rest, test.input)
		require.Equal(t, test.ok, ok, test.input)
	}
}

func TestExtractQABlock(t *testing.T) {
	questions := ExtractQABlock(parse(t, qaBlockPage))
	requireQuestions(t, []ExtractedQuestion{
		{
			QuestionText:  "Q1 - Capital of France?",
			Options:       []string{"London", "Berlin", "Paris", ""},
			CorrectAnswer: answer("Paris"),
		},
		{
			QuestionText:  "Q2 - Unlabelled options",
			Options:       []string{"Tokyo", "3.14"},
			CorrectAnswer: answer(""),
		},
	}, questions)
}

func TestExtractNormalQuestion(t *testing.T) {
	questions := ExtractNormalQuestion(parse(t, normalQuestionPage))
	requireQuestions(t, []ExtractedQuestion{
		{
			QuestionText:  "Which gas do plants absorb?",
			Options:       []string{"Oxygen", "Carbon dioxide", "Nitrogen", "Helium"},
			CorrectAnswer: answer("B"),
		},
		{
			QuestionText: "No answer given",
			Options:      []string{"Yes", "No"},
		},
	}, questions)
	require.Equal(t, "", questions[1].Answer())
}
