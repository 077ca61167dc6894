package main

import (
	"database/sql"
	devenv "eformify-backend/dev/env"
	"fmt"
	"os"
	"path/filepath"

	authdb "eformify-backend/services/auth/db"
	formsdb "eformify-backend/services/forms/db"

	_ "modernc.org/sqlite"
)

const configTemplate = `{
    "http": {
        "port": 8000,
        "allowed_origins": ["http://localhost:3000"],
    },
    "database": "<dev_state>/eformify.db",
    "timezone": "UTC",
    "auth": {
        // leave the smtp server empty to skip contact notifications
        "smtp": {
            "server": "",
            "port": 587,
            "email_address": "",
            "password": "",
        },
    },
    "scrape": {
        "timeout_seconds": 10,
        "cloudflare_bypass": false,
    },
    "forms": {
        "files_dir": "files",
    },
}
`

func createDb(filename, schema string) error {
	path, err := devenv.ResolvePath(filepath.Join("<dev_state>", filename))
	if err != nil {
		return err
	}

	_, err = os.Stat(path)
	if err == nil {
		fmt.Println("database already created at", path)
		return nil
	}

	fmt.Println("creating database at", path)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()
	_, err = db.Exec(schema)
	return err
}

func CreateEmptyDB() error {
	return createDb("eformify.db", authdb.Schema+"\n"+formsdb.Schema)
}

func writeIfMissing(path, contents string) error {
	_, err := os.Stat(path)
	if err == nil {
		fmt.Println("already exists:", path)
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	fmt.Println("creating", path)
	return os.WriteFile(path, []byte(contents), 0644)
}

func CreateConfig() error {
	err := os.MkdirAll("files", 0777)
	if err != nil {
		return err
	}
	return writeIfMissing("config.json5", configTemplate)
}

func PrintConfigLocations() {
	fmt.Println(`
server config:     config.json5 (overrides go in config.local.json5)
telemetry config:  telemetry.json5 (optional, otlp exporters)
dev state:         dev/.state`)
}
