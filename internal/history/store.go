// Package history keeps raw proposal text snapshots in sqlite so earlier
// drafts can be reloaded and re-scored. Scores are never stored; the engine
// is deterministic, so a snapshot is enough to reproduce them.
package history

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS versions (
    id TEXT PRIMARY KEY,
    proposal_id TEXT NOT NULL,
    title TEXT,
    body TEXT NOT NULL,
    word_count INTEGER NOT NULL,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_versions_proposal ON versions(proposal_id, created_at);
`

type Version struct {
	ID         string    `json:"id"`
	ProposalID string    `json:"proposalId"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	WordCount  int       `json:"wordCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}

// SaveVersion appends one raw-text snapshot for a proposal and returns the
// stored record.
func SaveVersion(dbPath, proposalID, title, body string) (Version, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return Version{}, err
	}
	defer conn.Close()

	v := Version{
		ID:         uuid.NewString(),
		ProposalID: proposalID,
		Title:      strings.TrimSpace(title),
		Body:       body,
		WordCount:  len(strings.Fields(body)),
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := conn.Exec(
		`INSERT INTO versions(id, proposal_id, title, body, word_count, created_at) VALUES(?,?,?,?,?,?)`,
		v.ID, v.ProposalID, v.Title, v.Body, v.WordCount, v.CreatedAt.Format(time.RFC3339Nano),
	); err != nil {
		return Version{}, fmt.Errorf("insert version: %w", err)
	}
	return v, nil
}

// ListVersions returns every snapshot of one proposal, oldest first. Bodies
// are included; callers wanting summaries can ignore them.
func ListVersions(dbPath, proposalID string) ([]Version, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.Query(
		`SELECT id, proposal_id, title, body, word_count, created_at FROM versions WHERE proposal_id = ? ORDER BY created_at ASC`,
		proposalID,
	)
	if err != nil {
		return nil, fmt.Errorf("query versions: %w", err)
	}
	defer rows.Close()

	var out []Version
	for rows.Next() {
		v, scanErr := scanVersion(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// LoadVersion fetches one snapshot by id.
func LoadVersion(dbPath, id string) (Version, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return Version{}, err
	}
	defer conn.Close()

	row := conn.QueryRow(
		`SELECT id, proposal_id, title, body, word_count, created_at FROM versions WHERE id = ?`, id,
	)
	return scanVersion(row)
}

// CountVersions reports how many snapshots a proposal has.
func CountVersions(dbPath, proposalID string) (int, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM versions WHERE proposal_id = ?`, proposalID).Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVersion(row rowScanner) (Version, error) {
	var v Version
	var created string
	if err := row.Scan(&v.ID, &v.ProposalID, &v.Title, &v.Body, &v.WordCount, &created); err != nil {
		return Version{}, fmt.Errorf("scan version: %w", err)
	}
	ts, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return Version{}, fmt.Errorf("parse created_at: %w", err)
	}
	v.CreatedAt = ts
	return v, nil
}
