package quiz

import (
	"eformify-backend/lib/htmlutil"
	"eformify-backend/lib/textutil"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const answerLabel = "Answer:"

// "A. Paris" style options, only A through D are recognized
var letterOptionLabel = regexp.MustCompile(`^[A-D]\.\s+`)

// "C) Paris" or "3. Paris" style anchor labels, the label may also be the
// entire text
var anchorOptionLabel = regexp.MustCompile(`^[A-Za-z0-9][\).](\s+|$)`)

// Strategies are run in this order and their results concatenated.
var Strategies = []Strategy{
	{Name: "table", Extract: ExtractTable},
	{Name: "paragraph", Extract: ExtractParagraph},
	{Name: "qa_block", Extract: ExtractQABlock},
	{Name: "normal_question", Extract: ExtractNormalQuestion},
}

func stripAnchorLabel(text string) string {
	rest, _ := textutil.StripLabel(text, anchorOptionLabel)
	return rest
}

// ExtractTable handles pages where every question is a table inside
// div.mid-section. The second cell holds the prompt and each radio button is
// wrapped by its label, the checked one being the answer.
func ExtractTable(doc *goquery.Document) []ExtractedQuestion {
	out := []ExtractedQuestion{}
	doc.Find(`div[class="mid-section"]`).Find("table").Each(func(_ int, table *goquery.Selection) {
		radios := table.Find(`input[type="radio"]`)

		question := ExtractedQuestion{
			QuestionText:  htmlutil.Text(table.Find("td").Eq(1)),
			Options:       make([]string, 0, radios.Length()),
			CorrectAnswer: answer(""),
		}
		checked := false
		radios.Each(func(_ int, radio *goquery.Selection) {
			label := htmlutil.Text(radio.Parent())
			question.Options = append(question.Options, label)

			_, isChecked := radio.Attr("checked")
			if isChecked && !checked {
				question.CorrectAnswer = answer(label)
				checked = true
			}
		})

		out = append(out, question)
	})
	return out
}

// ExtractParagraph handles p.pq prompts followed by a list of options and,
// further down, a .testanswer block with a <strong>Answer:</strong> label
// whose next sibling holds the answer. Only the siblings before the next
// prompt belong to the question.
func ExtractParagraph(doc *goquery.Document) []ExtractedQuestion {
	out := []ExtractedQuestion{}
	doc.Find(`p[class="pq"]`).Each(func(_ int, p *goquery.Selection) {
		label := p.NextUntil(`p[class="pq"]`).Filter(".testanswer").First().
			Find("strong").
			FilterFunction(func(_ int, s *goquery.Selection) bool {
				return strings.HasPrefix(htmlutil.Text(s), answerLabel)
			}).
			First()

		out = append(out, ExtractedQuestion{
			QuestionText:  htmlutil.Text(p),
			Options:       htmlutil.Texts(p.Next().Find("li")),
			CorrectAnswer: answer(htmlutil.Text(label.Next())),
		})
	})
	return out
}

// ExtractQABlock handles .QA containers of .Q blocks, the prompt is split
// between a span (usually the question number) and a paragraph, options are
// labelled anchors and the answer anchor has the class "true".
func ExtractQABlock(doc *goquery.Document) []ExtractedQuestion {
	out := []ExtractedQuestion{}
	doc.Find(".QA .Q").Each(func(_ int, q *goquery.Selection) {
		prompt := htmlutil.Text(q.Find("span").Eq(0)) + " - " + htmlutil.Text(q.Find("p").Eq(0))

		options := htmlutil.Texts(q.Find("a"))
		for i, o := range options {
			options[i] = stripAnchorLabel(o)
		}

		out = append(out, ExtractedQuestion{
			QuestionText:  prompt,
			Options:       options,
			CorrectAnswer: answer(stripAnchorLabel(htmlutil.Text(q.Find("a.true").First()))),
		})
	})
	return out
}

// ExtractNormalQuestion handles .question-type-normal blocks where options
// and the answer are paragraphs in .question-options: "A. ..." through
// "D. ..." are options and "Answer: ..." is the answer.
func ExtractNormalQuestion(doc *goquery.Document) []ExtractedQuestion {
	out := []ExtractedQuestion{}
	doc.Find(".question.single-question.question-type-normal").Each(func(_ int, q *goquery.Selection) {
		question := ExtractedQuestion{
			QuestionText: htmlutil.Text(q.Find(".question-main")),
			Options:      []string{},
		}

		q.Find(".question-options p").Each(func(_ int, p *goquery.Selection) {
			text := htmlutil.Text(p)
			if option, ok := textutil.StripLabel(text, letterOptionLabel); ok {
				question.Options = append(question.Options, option)
				return
			}
			if rest, ok := strings.CutPrefix(text, answerLabel); ok {
				question.CorrectAnswer = answer(strings.TrimSpace(rest))
			}
		})

		out = append(out, question)
	})
	return out
}
