package cmd

import (
	"eformify-backend/services/forms"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var formsLimit int

func init() {
	formsCmd.Flags().IntVar(&formsLimit, "limit", forms.RecentFormsLimit, "How many forms to list.")
	rootCmd.AddCommand(formsCmd)
}

var formsCmd = &cobra.Command{
	Use:   "forms",
	Short: "Lists the most recent forms in the database.",
	Run: func(cmd *cobra.Command, args []string) {
		database, err := openDB()
		if err != nil {
			fatal(err)
		}
		defer database.Close()

		recent, err := forms.NewService(database, forms.Options{}).RecentForms(cmd.Context(), formsLimit)
		if err != nil {
			fatal(err)
		}
		writeFormsTable(cmd.OutOrStdout(), recent)
	},
}

func writeFormsTable(w io.Writer, list []forms.Form) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"ID", "Name", "Questions", "Created"})

	for _, f := range list {
		t.AppendRow(table.Row{f.ID, f.DocumentName, len(f.Questions), f.CreatedAt.Format(time.DateTime)})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}
