package prefs

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS prefs (
	name     TEXT PRIMARY KEY,
	val      TEXT NOT NULL DEFAULT '',
	event    TEXT NOT NULL,
	type     INTEGER NOT NULL DEFAULT 1,
	html     TEXT NOT NULL DEFAULT 'text_input',
	position INTEGER NOT NULL DEFAULT 0
)`

// prefTypeAdvanced marks preferences editable in the plugin settings.
const prefTypeAdvanced = 1

// SQLite is a Store backed by a SQLite database file.
type SQLite struct {
	db *sql.DB
}

// Open opens (and creates if needed) the preference database at path.
func Open(path string) (*SQLite, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, fmt.Errorf("creating prefs dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening prefs db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating prefs table: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Seed installs missing preferences. Existing values are left untouched.
// It returns the number of rows added.
func (s *SQLite) Seed(prefs []Pref) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT OR IGNORE INTO prefs (name, val, event, type, html, position) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	added := 0
	for _, p := range prefs {
		res, err := stmt.Exec(p.Name, p.Value, p.Event, prefTypeAdvanced, p.HTML, p.Position)
		if err != nil {
			return 0, fmt.Errorf("inserting %s: %w", p.Name, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			added += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing prefs: %w", err)
	}
	return added, nil
}

// Set updates the value of an installed preference.
func (s *SQLite) Set(event, key, val string) error {
	res, err := s.db.Exec(`UPDATE prefs SET val = ? WHERE name = ? AND event = ?`, val, Name(event, key), event)
	if err != nil {
		return fmt.Errorf("updating %s: %w", Name(event, key), err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating %s: %w", Name(event, key), err)
	}
	if n == 0 {
		return fmt.Errorf("preference %s is not installed", Name(event, key))
	}
	return nil
}

// List returns the installed preferences of event in position order.
// An empty event lists every preference.
func (s *SQLite) List(event string) ([]Pref, error) {
	query := `SELECT name, val, event, html, position FROM prefs`
	var args []any
	if event != "" {
		query += ` WHERE event = ?`
		args = append(args, event)
	}
	query += ` ORDER BY event, position, name`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing prefs: %w", err)
	}
	defer rows.Close()

	var prefs []Pref
	for rows.Next() {
		var p Pref
		if err := rows.Scan(&p.Name, &p.Value, &p.Event, &p.HTML, &p.Position); err != nil {
			return nil, fmt.Errorf("scanning pref: %w", err)
		}
		prefs = append(prefs, p)
	}
	return prefs, rows.Err()
}

// Load implements Store.
func (s *SQLite) Load(event string) (map[string]string, error) {
	rows, err := s.db.Query(`SELECT name, val FROM prefs WHERE type = ? AND event = ?`, prefTypeAdvanced, event)
	if err != nil {
		return nil, fmt.Errorf("loading prefs: %w", err)
	}
	defer rows.Close()

	prefix := event + "_"
	values := make(map[string]string)
	for rows.Next() {
		var name, val string
		if err := rows.Scan(&name, &val); err != nil {
			return nil, fmt.Errorf("scanning pref: %w", err)
		}
		if key, ok := strings.CutPrefix(name, prefix); ok {
			values[key] = val
		}
	}
	return values, rows.Err()
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
