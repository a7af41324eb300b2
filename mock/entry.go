package mock

import (
	"context"

	"github.com/jdidion/docparse"
)

var _ docparse.EntryService = (*EntryService)(nil)

// EntryService is a mock implementation of docparse.EntryService.
type EntryService struct {
	CreateEntryFn         func(ctx context.Context, entry *docparse.Entry) error
	CreateEntriesFn       func(ctx context.Context, entries []*docparse.Entry) error
	FindEntryByIDFn       func(ctx context.Context, id string) (*docparse.Entry, error)
	FindEntriesFn         func(ctx context.Context, filter docparse.EntryFilter) ([]*docparse.Entry, error)
	DeleteEntryFn         func(ctx context.Context, id string) error
	DeleteEntriesByFileFn func(ctx context.Context, file string) error
}

func (s *EntryService) CreateEntry(ctx context.Context, entry *docparse.Entry) error {
	return s.CreateEntryFn(ctx, entry)
}

func (s *EntryService) CreateEntries(ctx context.Context, entries []*docparse.Entry) error {
	return s.CreateEntriesFn(ctx, entries)
}

func (s *EntryService) FindEntryByID(ctx context.Context, id string) (*docparse.Entry, error) {
	return s.FindEntryByIDFn(ctx, id)
}

func (s *EntryService) FindEntries(ctx context.Context, filter docparse.EntryFilter) ([]*docparse.Entry, error) {
	return s.FindEntriesFn(ctx, filter)
}

func (s *EntryService) DeleteEntry(ctx context.Context, id string) error {
	return s.DeleteEntryFn(ctx, id)
}

func (s *EntryService) DeleteEntriesByFile(ctx context.Context, file string) error {
	return s.DeleteEntriesByFileFn(ctx, file)
}
