package sqliteutil

import (
	"database/sql"
	devenv "eformify-backend/dev/env"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

func isRemote(path string) bool {
	for _, scheme := range []string{"libsql://", "https://", "http://", "wss://", "ws://"} {
		if strings.HasPrefix(path, scheme) {
			return true
		}
	}
	return false
}

// OpenDB opens the database at `path` and applies `schema` to it. `path` is
// either a local sqlite file (created if missing, may start with
// "<dev_state>"), ":memory:" or a libsql url.
func OpenDB(schema, path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("a database path was not specified")
	}

	var db *sql.DB
	var err error
	if isRemote(path) {
		db, err = sql.Open("libsql", path)
		if err != nil {
			return nil, err
		}
	} else {
		db, err = openLocal(path)
		if err != nil {
			return nil, err
		}
	}

	_, err = db.Exec(schema)
	if err != nil && !strings.Contains(err.Error(), "already exists") {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}

func openLocal(path string) (*sql.DB, error) {
	if path != ":memory:" {
		resolved, err := devenv.ResolvePath(path)
		if err != nil {
			return nil, err
		}
		path = resolved
		err = os.MkdirAll(filepath.Dir(path), 0777)
		if err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// sqlite only supports a single writer, this also keeps ":memory:"
	// databases on one connection.
	db.SetMaxOpenConns(1)

	pragmas := []string{"PRAGMA foreign_keys = ON"}
	if path != ":memory:" {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}
	for _, pragma := range pragmas {
		_, err = db.Exec(pragma)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}
	return db, nil
}
