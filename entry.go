package docparse

import (
	"context"
	"time"
)

// Entry represents one parsed docstring persisted in the index.
type Entry struct {
	ID          string     `json:"id"`
	File        string     `json:"file"`
	Symbol      string     `json:"symbol"`
	Kind        string     `json:"kind"`
	Line        int        `json:"line"`
	Raw         string     `json:"raw"`
	ContentHash string     `json:"contentHash"`
	Doc         *DocString `json:"doc"`
	IndexedAt   time.Time  `json:"indexedAt"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *Entry) Validate() error {
	if e.File == "" {
		return Errorf(EINVALID, "entry file required")
	}
	if e.Symbol == "" && e.Kind != "module" {
		return Errorf(EINVALID, "entry symbol required")
	}
	if e.Doc == nil {
		return Errorf(EINVALID, "entry doc required")
	}
	return nil
}

// EntryService represents a service for managing indexed docstring
// entries.
type EntryService interface {
	// CreateEntry creates or replaces an entry. An entry with the
	// same file and symbol as an existing one replaces it.
	CreateEntry(ctx context.Context, entry *Entry) error

	// CreateEntries creates multiple entries in a batch.
	CreateEntries(ctx context.Context, entries []*Entry) error

	// FindEntryByID retrieves an entry by ID.
	// Returns ENOTFOUND if the entry does not exist.
	FindEntryByID(ctx context.Context, id string) (*Entry, error)

	// FindEntries retrieves entries matching the filter, ordered by
	// file and line.
	FindEntries(ctx context.Context, filter EntryFilter) ([]*Entry, error)

	// DeleteEntry permanently removes an entry.
	// Returns ENOTFOUND if the entry does not exist.
	DeleteEntry(ctx context.Context, id string) error

	// DeleteEntriesByFile removes all entries for a file.
	DeleteEntriesByFile(ctx context.Context, file string) error
}

// EntryFilter represents a filter for FindEntries.
type EntryFilter struct {
	ID     *string `json:"id"`
	File   *string `json:"file"`
	Symbol *string `json:"symbol"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
