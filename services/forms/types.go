package forms

import (
	"encoding/json"
	"time"
)

// OptionList is a question's choices. Besides plain strings it accepts the
// {"optionText": "..."} objects the form editor works with.
type OptionList []string

func (o *OptionList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	out := make(OptionList, 0, len(raw))
	for _, item := range raw {
		var text string
		if json.Unmarshal(item, &text) == nil {
			out = append(out, text)
			continue
		}
		var option struct {
			OptionText string `json:"optionText"`
		}
		err = json.Unmarshal(item, &option)
		if err != nil {
			return err
		}
		out = append(out, option.OptionText)
	}
	*o = out
	return nil
}

type Question struct {
	QuestionText string     `json:"questionText"`
	QuestionType string     `json:"questionType"`
	Options      OptionList `json:"options"`
	Answer       string     `json:"answer"`
	Points       float64    `json:"points"`
	Required     bool       `json:"required"`
}

type Form struct {
	ID           string     `json:"_id"`
	DocumentName string     `json:"document_name"`
	DocDesc      string     `json:"doc_desc"`
	Questions    []Question `json:"questions"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type Answer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	// graded against the form's answer key when omitted
	IsCorrect *bool `json:"isCorrect"`
}

type ResponseSet struct {
	ID         string    `json:"_id"`
	UserName   string    `json:"userName"`
	DocumentID string    `json:"documentId"`
	Answers    []Answer  `json:"answers"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type GeneratedOption struct {
	OptionText string `json:"optionText"`
}

// GeneratedQuestion is a blank question for the form editor.
type GeneratedQuestion struct {
	ID           string            `json:"id"`
	QuestionText string            `json:"questionText"`
	QuestionType string            `json:"questionType"`
	Options      []GeneratedOption `json:"options"`
	Open         bool              `json:"open"`
	Required     bool              `json:"required"`
}
