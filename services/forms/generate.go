package forms

import (
	"fmt"
	"os"

	"github.com/google/uuid"
)

const maxGeneratedQuestions = 500

// GenerateQuestions returns `count` placeholder questions for the editor to
// fill in, the topic is currently ignored.
func GenerateQuestions(topic string, count int) []GeneratedQuestion {
	if count < 0 {
		count = 0
	}
	if count > maxGeneratedQuestions {
		count = maxGeneratedQuestions
	}

	out := make([]GeneratedQuestion, count)
	for i := range out {
		out[i] = GeneratedQuestion{
			ID:           uuid.NewString(),
			QuestionText: fmt.Sprintf("Question %d", i+1),
			QuestionType: "radio",
			Options:      []GeneratedOption{{OptionText: "Option 1"}},
			Open:         true,
			Required:     false,
		}
	}
	return out
}

// ListFiles returns the names of the entries in `dir`, sorted.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names, nil
}
