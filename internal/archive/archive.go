// Package archive persists generated report payloads in sqlite. Besides
// keeping history, the archive supplies the reference instant for the Events
// page's "since last report" mode.
package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"finreport/internal/log"
)

// Page names as stored in the archive.
const (
	PageMain   = "main"
	PageEvents = "events"
)

type Repository struct {
	db     *sql.DB
	logger *log.Logger
}

func New(dbPath string, logger *log.Logger) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{
		db:     db,
		logger: logger.WithComponent(log.ComponentArchive),
	}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Save stores a generated payload and returns its archive id.
func (r *Repository) Save(ctx context.Context, page string, referenceTime time.Time, payload []byte) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO reports (page, reference_time, generated_at, payload) VALUES (?, ?, ?, ?)`,
		page,
		referenceTime.Format(time.RFC3339),
		time.Now().UTC().Format(time.RFC3339),
		payload,
	)
	if err != nil {
		return 0, fmt.Errorf("insert report: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("report id: %w", err)
	}

	r.logger.InfoContext(ctx, "Report archived",
		log.FieldPage, page, "id", id,
		log.FieldReferenceTime, referenceTime.Format(time.RFC3339))
	return id, nil
}

// LastGeneratedAt returns when a page was last generated. The boolean is
// false when the page has never been archived.
func (r *Repository) LastGeneratedAt(ctx context.Context, page string) (time.Time, bool, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT generated_at FROM reports WHERE page = ? ORDER BY generated_at DESC LIMIT 1`,
		page,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("query last report: %w", err)
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse generated_at %q: %w", raw, err)
	}
	return t, true, nil
}

// Payload returns the stored payload of an archived report.
func (r *Repository) Payload(ctx context.Context, id int64) ([]byte, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM reports WHERE id = ?`, id).Scan(&payload)
	if err != nil {
		return nil, fmt.Errorf("query payload: %w", err)
	}
	return payload, nil
}
