package sqlite_db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	_ "github.com/glebarez/sqlite" // Pure Go SQLite driver
	"github.com/google/uuid"

	"github.com/golangast/standuptagger/internal/projects"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	"id" TEXT PRIMARY KEY,
	"source" TEXT NOT NULL,
	"date" TEXT NOT NULL,
	"created_at" TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS mentions (
	"run_id" TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	"position" INTEGER NOT NULL,
	"project" TEXT NOT NULL,
	"sentence" TEXT NOT NULL,
	"owner" TEXT NOT NULL DEFAULT '',
	"action" TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (run_id, position)
);`

var (
	// ErrRunNotFound is returned by LoadRun when no run id has the prefix.
	ErrRunNotFound = errors.New("run not found")
	// ErrAmbiguousRun is returned by LoadRun when several run ids share the prefix.
	ErrAmbiguousRun = errors.New("ambiguous run id")
)

// fixed width so created_at sorts as text
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// InitDB opens the SQLite database at dataSourceName, creating the file, its
// directory and the runs/mentions tables as needed.
func InitDB(dataSourceName string) (*sql.DB, error) {
	dir := filepath.Dir(dataSourceName)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	// The driver name for github.com/glebarez/sqlite is "sqlite"
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return db, nil
}

// Run is one saved analysis.
type Run struct {
	ID        string
	Source    string
	Date      string
	CreatedAt time.Time
	Projects  *projects.Projects
}

// NewRun returns a run with a fresh id, stamped now.
func NewRun(source, date string, p *projects.Projects) Run {
	return Run{
		ID:        uuid.NewString(),
		Source:    source,
		Date:      date,
		CreatedAt: time.Now().UTC(),
		Projects:  p,
	}
}

// SaveRun stores the run and all its mentions in one transaction.
func SaveRun(ctx context.Context, db *sql.DB, run Run) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs(id, source, date, created_at) VALUES (?, ?, ?, ?)`,
		run.ID, run.Source, run.Date, run.CreatedAt.UTC().Format(timeLayout)); err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO mentions(run_id, position, project, sentence, owner, action) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare mention insert: %w", err)
	}
	defer stmt.Close()

	position := 0
	if run.Projects != nil {
		for _, name := range run.Projects.Names() {
			for _, m := range run.Projects.Mentions(name) {
				if _, err := stmt.ExecContext(ctx, run.ID, position, name, m.Sentence, m.Person, m.Action); err != nil {
					return fmt.Errorf("failed to insert mention: %w", err)
				}
				position++
			}
		}
	}
	return tx.Commit()
}

// ListRuns returns the most recent runs first, without their mentions.
func ListRuns(ctx context.Context, db *sql.DB, limit int) ([]Run, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, source, date, created_at FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var created string
		if err := rows.Scan(&r.ID, &r.Source, &r.Date, &created); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if r.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, fmt.Errorf("bad created_at %q for run %s: %w", created, r.ID, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// LoadRun reads a run and rebuilds its projects in their saved order. A
// unique id prefix is accepted; a prefix shared by several runs is
// ErrAmbiguousRun.
func LoadRun(ctx context.Context, db *sql.DB, id string) (Run, error) {
	var r Run
	if id == "" {
		return r, fmt.Errorf("%w: empty id", ErrRunNotFound)
	}
	ids, err := matchRuns(ctx, db, id)
	if err != nil {
		return r, err
	}
	if len(ids) == 0 {
		return r, fmt.Errorf("%w: no run id starts with '%s'", ErrRunNotFound, id)
	}
	if len(ids) > 1 {
		return r, fmt.Errorf("%w: '%s' matches %s and %s", ErrAmbiguousRun, id, ids[0], ids[1])
	}

	var created string
	err = db.QueryRowContext(ctx,
		`SELECT id, source, date, created_at FROM runs WHERE id = ?`, ids[0]).
		Scan(&r.ID, &r.Source, &r.Date, &created)
	if err != nil {
		return r, fmt.Errorf("failed to query run: %w", err)
	}
	if r.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return r, fmt.Errorf("bad created_at %q for run %s: %w", created, r.ID, err)
	}

	rows, err := db.QueryContext(ctx,
		`SELECT project, sentence, owner, action FROM mentions WHERE run_id = ? ORDER BY position ASC`, r.ID)
	if err != nil {
		return r, fmt.Errorf("failed to query mentions: %w", err)
	}
	defer rows.Close()

	r.Projects = projects.NewProjects()
	for rows.Next() {
		var name string
		var m projects.Mention
		if err := rows.Scan(&name, &m.Sentence, &m.Person, &m.Action); err != nil {
			return r, fmt.Errorf("failed to scan mention: %w", err)
		}
		r.Projects.Add(name, m)
	}
	return r, rows.Err()
}

// matchRuns returns up to two run ids starting with prefix. The prefix is
// compared literally, so % and _ are not wildcards.
func matchRuns(ctx context.Context, db *sql.DB, prefix string) ([]string, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id FROM runs WHERE substr(id, 1, ?) = ? ORDER BY created_at DESC LIMIT 2`,
		utf8.RuneCountInString(prefix), prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to query run: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan run id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
