package cmd

import (
	"database/sql"
	"eformify-backend/lib/sqliteutil"
	"eformify-backend/lib/telemetry"
	authdb "eformify-backend/services/auth/db"
	formsdb "eformify-backend/services/forms/db"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool
var databasePath string

var rootCmd = &cobra.Command{
	Use:   "eformify-cli",
	Short: "eformify-cli scrapes quiz pages and inspects the eFormify database.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging.")
	rootCmd.PersistentFlags().StringVar(&databasePath, "db", "<dev_state>/eformify.db", "The sqlite file or libsql url of the database.")
}

func openDB() (*sql.DB, error) {
	return sqliteutil.OpenDB(authdb.Schema+"\n"+formsdb.Schema, databasePath)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
