package sqlite_test

import (
	"context"
	"testing"

	"github.com/jdidion/docparse"
	"github.com/jdidion/docparse/google"
	"github.com/jdidion/docparse/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEntry builds a valid entry for the given file and symbol.
func testEntry(file, symbol string) *docparse.Entry {
	raw := "Summary for " + symbol + ".\n\nArgs:\n  x: The value."
	return &docparse.Entry{
		File:   file,
		Symbol: symbol,
		Kind:   "function",
		Line:   10,
		Raw:    raw,
		Doc:    google.New().Parse(raw),
	}
}

func TestEntryService_CreateEntry(t *testing.T) {
	t.Parallel()

	t.Run("creates entry with generated ID, hash and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewEntryService(db)
		ctx := context.Background()

		entry := testEntry("pkg/mod.py", "square")
		require.NoError(t, svc.CreateEntry(ctx, entry))

		assert.NotEmpty(t, entry.ID, "ID should be generated")
		assert.NotEmpty(t, entry.ContentHash, "ContentHash should be generated")
		assert.False(t, entry.IndexedAt.IsZero(), "IndexedAt should be set")
	})

	t.Run("returns error for invalid entry", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewEntryService(db)

		err := svc.CreateEntry(context.Background(), &docparse.Entry{})
		require.Error(t, err)
		assert.Equal(t, docparse.EINVALID, docparse.ErrorCode(err))
	})

	t.Run("replaces entry with the same file and symbol", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewEntryService(db)
		ctx := context.Background()

		first := testEntry("pkg/mod.py", "square")
		require.NoError(t, svc.CreateEntry(ctx, first))

		second := testEntry("pkg/mod.py", "square")
		second.Line = 42
		require.NoError(t, svc.CreateEntry(ctx, second))

		file := "pkg/mod.py"
		entries, err := svc.FindEntries(ctx, docparse.EntryFilter{File: &file})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 42, entries[0].Line)
	})

	t.Run("round-trips the parsed doc", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewEntryService(db)
		ctx := context.Background()

		entry := testEntry("pkg/mod.py", "square")
		require.NoError(t, svc.CreateEntry(ctx, entry))

		found, err := svc.FindEntryByID(ctx, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, entry.Doc, found.Doc)
		assert.Equal(t, entry.Raw, found.Raw)
	})
}

func TestEntryService_CreateEntries(t *testing.T) {
	t.Parallel()

	t.Run("creates a batch", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewEntryService(db)
		ctx := context.Background()

		batch := []*docparse.Entry{
			testEntry("a.py", "f"),
			testEntry("a.py", "g"),
			testEntry("b.py", "h"),
		}
		require.NoError(t, svc.CreateEntries(ctx, batch))

		entries, err := svc.FindEntries(ctx, docparse.EntryFilter{})
		require.NoError(t, err)
		assert.Len(t, entries, 3)
	})

	t.Run("rejects the batch when any entry is invalid", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewEntryService(db)
		ctx := context.Background()

		batch := []*docparse.Entry{
			testEntry("a.py", "f"),
			{File: "a.py"}, // missing symbol and doc
		}
		err := svc.CreateEntries(ctx, batch)
		require.Error(t, err)
		assert.Equal(t, docparse.EINVALID, docparse.ErrorCode(err))

		entries, err := svc.FindEntries(ctx, docparse.EntryFilter{})
		require.NoError(t, err)
		assert.Empty(t, entries, "no partial batch should be written")
	})
}

func TestEntryService_FindEntries(t *testing.T) {
	t.Parallel()

	t.Run("filters by file and symbol", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewEntryService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateEntries(ctx, []*docparse.Entry{
			testEntry("a.py", "f"),
			testEntry("a.py", "g"),
			testEntry("b.py", "f"),
		}))

		file := "a.py"
		entries, err := svc.FindEntries(ctx, docparse.EntryFilter{File: &file})
		require.NoError(t, err)
		assert.Len(t, entries, 2)

		symbol := "f"
		entries, err = svc.FindEntries(ctx, docparse.EntryFilter{Symbol: &symbol})
		require.NoError(t, err)
		assert.Len(t, entries, 2)

		entries, err = svc.FindEntries(ctx, docparse.EntryFilter{File: &file, Symbol: &symbol})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "a.py", entries[0].File)
	})

	t.Run("orders by file and line", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewEntryService(db)
		ctx := context.Background()

		first := testEntry("b.py", "late")
		second := testEntry("a.py", "early")
		second.Line = 1
		third := testEntry("a.py", "later")
		third.Line = 50
		require.NoError(t, svc.CreateEntries(ctx, []*docparse.Entry{first, second, third}))

		entries, err := svc.FindEntries(ctx, docparse.EntryFilter{})
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "early", entries[0].Symbol)
		assert.Equal(t, "later", entries[1].Symbol)
		assert.Equal(t, "late", entries[2].Symbol)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewEntryService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateEntries(ctx, []*docparse.Entry{
			testEntry("a.py", "f"),
			testEntry("b.py", "g"),
			testEntry("c.py", "h"),
		}))

		entries, err := svc.FindEntries(ctx, docparse.EntryFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "b.py", entries[0].File)
	})
}

func TestEntryService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("deletes an entry by ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewEntryService(db)
		ctx := context.Background()

		entry := testEntry("a.py", "f")
		require.NoError(t, svc.CreateEntry(ctx, entry))
		require.NoError(t, svc.DeleteEntry(ctx, entry.ID))

		_, err := svc.FindEntryByID(ctx, entry.ID)
		assert.Equal(t, docparse.ENOTFOUND, docparse.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewEntryService(db)

		err := svc.DeleteEntry(context.Background(), "missing")
		assert.Equal(t, docparse.ENOTFOUND, docparse.ErrorCode(err))
	})

	t.Run("deletes all entries for a file", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewEntryService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateEntries(ctx, []*docparse.Entry{
			testEntry("a.py", "f"),
			testEntry("a.py", "g"),
			testEntry("b.py", "h"),
		}))
		require.NoError(t, svc.DeleteEntriesByFile(ctx, "a.py"))

		entries, err := svc.FindEntries(ctx, docparse.EntryFilter{})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "b.py", entries[0].File)
	})
}
