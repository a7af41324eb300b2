package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/jdidion/docparse"
)

// Compile-time interface verification.
var _ docparse.EntryService = (*EntryService)(nil)

// EntryService implements docparse.EntryService using SQLite. Parsed
// records are stored JSON-encoded alongside the raw docstring text
// and an xxHash content hash for change detection.
type EntryService struct {
	db *DB
}

// NewEntryService creates a new EntryService.
func NewEntryService(db *DB) *EntryService {
	return &EntryService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// CreateEntry creates or replaces an entry. An entry with the same
// file and symbol as an existing one replaces it and keeps a fresh ID.
func (s *EntryService) CreateEntry(ctx context.Context, entry *docparse.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	entry.ID = uuid.New().String()
	entry.IndexedAt = time.Now().UTC()
	entry.ContentHash = hashContent(entry.Raw)

	doc, err := json.Marshal(entry.Doc)
	if err != nil {
		return fmt.Errorf("failed to encode doc: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO entries (id, file, symbol, kind, line, raw, content_hash, doc, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(file, symbol) DO UPDATE SET
			id = excluded.id,
			kind = excluded.kind,
			line = excluded.line,
			raw = excluded.raw,
			content_hash = excluded.content_hash,
			doc = excluded.doc,
			indexed_at = excluded.indexed_at
	`, entry.ID, entry.File, entry.Symbol, entry.Kind, entry.Line, entry.Raw,
		entry.ContentHash, string(doc), entry.IndexedAt.Format(time.RFC3339))

	return err
}

// CreateEntries creates multiple entries in one transaction.
func (s *EntryService) CreateEntries(ctx context.Context, entries []*docparse.Entry) error {
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, entry := range entries {
		entry.ID = uuid.New().String()
		entry.IndexedAt = time.Now().UTC()
		entry.ContentHash = hashContent(entry.Raw)

		doc, err := json.Marshal(entry.Doc)
		if err != nil {
			return fmt.Errorf("failed to encode doc: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO entries (id, file, symbol, kind, line, raw, content_hash, doc, indexed_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(file, symbol) DO UPDATE SET
				id = excluded.id,
				kind = excluded.kind,
				line = excluded.line,
				raw = excluded.raw,
				content_hash = excluded.content_hash,
				doc = excluded.doc,
				indexed_at = excluded.indexed_at
		`, entry.ID, entry.File, entry.Symbol, entry.Kind, entry.Line, entry.Raw,
			entry.ContentHash, string(doc), entry.IndexedAt.Format(time.RFC3339)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindEntryByID retrieves an entry by ID.
func (s *EntryService) FindEntryByID(ctx context.Context, id string) (*docparse.Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, file, symbol, kind, line, raw, content_hash, doc, indexed_at
		FROM entries
		WHERE id = ?
	`, id)

	entry, err := scanEntry(row.Scan)
	if err == sql.ErrNoRows {
		return nil, docparse.Errorf(docparse.ENOTFOUND, "entry not found")
	}
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// FindEntries retrieves entries matching the filter, ordered by file
// and line.
func (s *EntryService) FindEntries(ctx context.Context, filter docparse.EntryFilter) ([]*docparse.Entry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, file, symbol, kind, line, raw, content_hash, doc, indexed_at FROM entries WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.File != nil {
		query.WriteString(" AND file = ?")
		args = append(args, *filter.File)
	}
	if filter.Symbol != nil {
		query.WriteString(" AND symbol = ?")
		args = append(args, *filter.Symbol)
	}

	query.WriteString(" ORDER BY file ASC, line ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*docparse.Entry
	for rows.Next() {
		entry, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// DeleteEntry permanently removes an entry.
func (s *EntryService) DeleteEntry(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM entries WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return docparse.Errorf(docparse.ENOTFOUND, "entry not found")
	}

	return nil
}

// DeleteEntriesByFile removes all entries for a file.
func (s *EntryService) DeleteEntriesByFile(ctx context.Context, file string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM entries WHERE file = ?", file)
	return err
}

// scanEntry scans one entries row using the provided scan function.
func scanEntry(scan func(dest ...any) error) (*docparse.Entry, error) {
	var entry docparse.Entry
	var doc, indexedAt string

	if err := scan(&entry.ID, &entry.File, &entry.Symbol, &entry.Kind, &entry.Line,
		&entry.Raw, &entry.ContentHash, &doc, &indexedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(doc), &entry.Doc); err != nil {
		return nil, fmt.Errorf("failed to decode doc: %w", err)
	}

	var err error
	entry.IndexedAt, err = parseRFC3339(indexedAt, "indexed_at")
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// parseRFC3339 decodes a timestamp column stored as RFC3339 text.
func parseRFC3339(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to decode %s: %w", column, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses for positive
// filter values.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
