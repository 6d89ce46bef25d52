// Package database opens the tablon SQLite file and keeps its schema
// current. Storage is document-style: a household row carries its member
// and active-list arrays as JSON text, so every list mutation rewrites a
// whole row and concurrent writers contend on rows, not columns.
package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var schema embed.FS

// pragmas applied to every database before it is handed out. WAL lets
// live-view readers proceed while a household row is being rewritten;
// the busy timeout covers the writers queueing on that row.
var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 5000",
	"PRAGMA foreign_keys = ON",
	"PRAGMA synchronous = NORMAL",
}

// Open opens the SQLite database at path, applies the pragmas, and
// brings the schema up to date. Writers serialize on whole household
// rows anyway, so the pool is capped at one connection; this also keeps
// ":memory:" databases coherent across goroutines.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply %q: %w", p, err)
		}
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}
	return db, nil
}

func migrate(db *sql.DB) error {
	goose.SetBaseFS(schema)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.Up(db, "migrations")
}
