package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/starford/mannaz/internal/apperr"
)

// Document is one stored row. Body is the canonical JSON serialization of the
// entity; created_at/updated_at columns mirror the body timestamps so the
// store can sort without parsing JSON.
type Document struct {
	ID        string
	Body      json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// InsertOne persists a new document in the given collection.
func (db *DB) InsertOne(collection string, doc Document) error {
	_, err := db.conn.Exec(`
		INSERT INTO documents (collection, id, body, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, collection, doc.ID, string(doc.Body), doc.CreatedAt, doc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("store: insert %s: %w", collection, err)
	}
	return nil
}

// InsertCurrent persists a new document and repoints the collection's current
// marker at it within a single transaction. Older documents stay in place as
// history.
func (db *DB) InsertCurrent(collection string, doc Document) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	_, err = tx.Exec(`
		INSERT INTO documents (collection, id, body, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, collection, doc.ID, string(doc.Body), doc.CreatedAt, doc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("store: insert %s: %w", collection, err)
	}

	_, err = tx.Exec(`
		INSERT INTO current_docs (collection, doc_id) VALUES (?, ?)
		ON CONFLICT(collection) DO UPDATE SET doc_id = excluded.doc_id
	`, collection, doc.ID)
	if err != nil {
		return fmt.Errorf("store: set current %s: %w", collection, err)
	}

	return tx.Commit()
}

// FindCurrent returns the document the collection's current marker points at,
// or apperr.ErrNotFound when the marker is absent.
func (db *DB) FindCurrent(collection string) (*Document, error) {
	row := db.conn.QueryRow(`
		SELECT d.id, d.body, d.created_at, d.updated_at
		FROM documents d
		JOIN current_docs c ON c.collection = d.collection AND c.doc_id = d.id
		WHERE d.collection = ?
	`, collection)
	return scanDocument(row, collection)
}

// FindByID returns a single document by id, or apperr.ErrNotFound.
func (db *DB) FindByID(collection, id string) (*Document, error) {
	row := db.conn.QueryRow(`
		SELECT id, body, created_at, updated_at
		FROM documents
		WHERE collection = ? AND id = ?
	`, collection, id)
	return scanDocument(row, collection)
}

// FindMany returns documents matching an equality filter on top-level JSON
// body fields, newest first, paginated by limit/skip. An empty result is not
// an error. Filter keys are code-controlled field names, never client input.
func (db *DB) FindMany(collection string, filter map[string]string, limit, skip int) ([]Document, error) {
	if limit <= 0 {
		limit = 100
	}
	if skip < 0 {
		skip = 0
	}

	query := `SELECT id, body, created_at, updated_at FROM documents WHERE collection = ?`
	args := []any{collection}
	for field, value := range filter {
		query += fmt.Sprintf(` AND json_extract(body, '$.%s') = ?`, field)
		args = append(args, value)
	}
	query += ` ORDER BY created_at DESC LIMIT ? OFFSET ?`
	args = append(args, limit, skip)

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("store: find %s: %w", collection, err)
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		var d Document
		var body string
		if err := rows.Scan(&d.ID, &body, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		d.Body = json.RawMessage(body)
		out = append(out, d)
	}
	return out, rows.Err()
}

// UpdateFields replaces the named top-level fields of a document's JSON body
// and bumps updated_at. Fields not present in patch keep their stored value;
// list-valued fields are replaced wholesale, never merged. The returned count
// is 0 when no document matched; interpreting that is left to the caller.
//
// The read-modify-write is a single-document transaction. Two concurrent
// updates of the same document still race at the API level (read latest, then
// patch by id); last write wins.
func (db *DB) UpdateFields(collection, id string, patch map[string]any, now time.Time) (int64, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return 0, fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var body string
	err = tx.QueryRow(`SELECT body FROM documents WHERE collection = ? AND id = ?`, collection, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("store: read %s/%s: %w", collection, id, err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return 0, fmt.Errorf("store: decode %s/%s: %w", collection, id, err)
	}
	for field, value := range patch {
		raw, err := json.Marshal(value)
		if err != nil {
			return 0, fmt.Errorf("store: encode field %s: %w", field, err)
		}
		doc[field] = raw
	}
	merged, err := json.Marshal(doc)
	if err != nil {
		return 0, fmt.Errorf("store: encode %s/%s: %w", collection, id, err)
	}

	res, err := tx.Exec(`
		UPDATE documents SET body = ?, updated_at = ?
		WHERE collection = ? AND id = ?
	`, string(merged), now, collection, id)
	if err != nil {
		return 0, fmt.Errorf("store: update %s/%s: %w", collection, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, tx.Commit()
}

func scanDocument(row *sql.Row, collection string) (*Document, error) {
	var d Document
	var body string
	err := row.Scan(&d.ID, &body, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: scan %s: %w", collection, err)
	}
	d.Body = json.RawMessage(body)
	return &d, nil
}
