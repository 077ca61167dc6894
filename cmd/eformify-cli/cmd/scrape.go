package cmd

import (
	"eformify-backend/lib/scrapers/quiz"
	"eformify-backend/services/forms"
	"eformify-backend/services/scrape"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var scrapeFlags struct {
	json       bool
	timeout    time.Duration
	cloudflare bool
	saveAs     string
}

func init() {
	scrapeCmd.Flags().BoolVar(&scrapeFlags.json, "json", false, "Print the questions as json instead of a table.")
	scrapeCmd.Flags().DurationVar(&scrapeFlags.timeout, "timeout", quiz.DefaultTimeout, "How long to wait for the page.")
	scrapeCmd.Flags().BoolVar(&scrapeFlags.cloudflare, "cloudflare", false, "Fetch through the cloudflare bypass transport.")
	scrapeCmd.Flags().StringVar(&scrapeFlags.saveAs, "save-as", "", "Also store the questions as a new form with this name.")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape <url>",
	Short: "Prints the quiz questions found on a page.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scraper := quiz.NewScraper(quiz.NewFetcher(quiz.FetcherOptions{
			Timeout:          scrapeFlags.timeout,
			CloudflareBypass: scrapeFlags.cloudflare,
		}))
		questions, err := scraper.Scrape(cmd.Context(), args[0])
		if err != nil {
			fatal(err)
		}

		if scrapeFlags.json {
			err = writeQuestionsJSON(cmd.OutOrStdout(), questions)
		} else {
			writeQuestionsTable(cmd.OutOrStdout(), questions)
		}
		if err != nil {
			fatal(err)
		}

		if scrapeFlags.saveAs == "" {
			return
		}
		database, err := openDB()
		if err != nil {
			fatal(err)
		}
		defer database.Close()

		form, err := forms.NewService(database, forms.Options{}).AddForm(cmd.Context(), forms.Form{
			DocumentName: scrapeFlags.saveAs,
			DocDesc:      fmt.Sprintf("Scraped from %s", args[0]),
			Questions:    scrape.ToFormQuestions(questions),
		})
		if err != nil {
			fatal(err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "saved %d questions as form %s\n", len(form.Questions), form.ID)
	},
}

func writeQuestionsJSON(w io.Writer, questions []quiz.ExtractedQuestion) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(questions)
}

func writeQuestionsTable(w io.Writer, questions []quiz.ExtractedQuestion) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Question", "Options", "Answer"})

	for i, q := range questions {
		answer := "?"
		if q.CorrectAnswer != nil {
			answer = *q.CorrectAnswer
		}
		t.AppendRow(table.Row{i + 1, q.QuestionText, strings.Join(q.Options, "\n"), answer})
		t.AppendSeparator()
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}
