package cmd

import (
	"bytes"
	"eformify-backend/lib/scrapers/quiz"
	"eformify-backend/services/forms"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWriteQuestions(t *testing.T) {
	answer := "Paris"
	questions := []quiz.ExtractedQuestion{
		{QuestionText: "Capital of France?", Options: []string{"London", "Paris"}, CorrectAnswer: &answer},
		{QuestionText: "Unanswered", Options: []string{}},
	}

	var out bytes.Buffer
	writeQuestionsTable(&out, questions)
	require.Contains(t, out.String(), "Capital of France?")
	require.Contains(t, out.String(), "Paris")
	require.Contains(t, out.String(), "?")

	out.Reset()
	require.NoError(t, writeQuestionsJSON(&out, questions))
	var decoded []quiz.ExtractedQuestion
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	require.Nil(t, decoded[1].CorrectAnswer)
}

func TestWriteForms(t *testing.T) {
	var out bytes.Buffer
	writeFormsTable(&out, []forms.Form{{
		ID:           "abc",
		DocumentName: "Geography",
		Questions:    []forms.Question{{QuestionText: "q"}},
		CreatedAt:    time.Date(2024, time.August, 26, 10, 0, 0, 0, time.UTC),
	}})
	require.Contains(t, out.String(), "Geography")
	require.Contains(t, out.String(), "2024-08-26 10:00:00")
}

func TestScrapeAndListCommands(t *testing.T) {
	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<div class="question single-question question-type-normal">
			<div class="question-main">Which gas do plants absorb?</div>
			<div class="question-options"><p>A. Oxygen</p><p>B. Carbon dioxide</p><p>Answer: B</p></div>
		</div>`)
	}))
	defer site.Close()

	dbPath := filepath.Join(t.TempDir(), "eformify.db")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"scrape", site.URL, "--json", "--save-as", "Plants", "--db", dbPath})
	require.NoError(t, rootCmd.Execute())
	require.Contains(t, out.String(), "Carbon dioxide")
	require.Contains(t, out.String(), "saved 1 questions")

	out.Reset()
	rootCmd.SetArgs([]string{"forms", "--db", dbPath})
	require.NoError(t, rootCmd.Execute())
	require.Contains(t, out.String(), "Plants")
}
