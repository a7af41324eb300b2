package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/jdidion/docparse"
	"github.com/jdidion/docparse/bloom"
	"golang.org/x/sync/errgroup"
)

// Bloom filter sizing for file-path deduplication across patterns.
const (
	indexExpectedFiles     = 10000
	indexFalsePositiveRate = 0.01
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	paths, err := c.collectPaths()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	if len(paths) == 0 {
		fmt.Fprintln(deps.Stdout, "No files matched.")
		return nil
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 8
	}

	var mu sync.Mutex
	var indexed, entryCount, empty int

	g, gctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)

	for _, path := range paths {
		g.Go(func() error {
			src, err := os.ReadFile(filepath.Join(c.Dir, path))
			if err != nil {
				return fmt.Errorf("failed to read %q: %w", path, err)
			}

			var entries []*docparse.Entry
			for _, doc := range deps.Extractor.Extract(string(src)) {
				entries = append(entries, &docparse.Entry{
					File:   path,
					Symbol: doc.Symbol,
					Kind:   doc.Kind,
					Line:   doc.Line,
					Raw:    doc.Text,
					Doc:    deps.Parser.Parse(doc.Text),
				})
			}

			// Reindexing replaces the file's entries, including those
			// for symbols that no longer exist.
			if err := deps.Entries.DeleteEntriesByFile(gctx, path); err != nil {
				return fmt.Errorf("failed to clear entries for %q: %w", path, err)
			}
			if len(entries) > 0 {
				if err := deps.Entries.CreateEntries(gctx, entries); err != nil {
					return fmt.Errorf("failed to store entries for %q: %w", path, err)
				}
			}

			mu.Lock()
			if len(entries) > 0 {
				indexed++
				entryCount += len(entries)
			} else {
				empty++
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d docstrings from %d files (%d files had none)\n",
		entryCount, indexed, empty)
	return nil
}

// collectPaths resolves the glob patterns against the root directory.
// Overlapping patterns can match the same file more than once; a
// Bloom filter drops the repeats.
func (c *IndexCmd) collectPaths() ([]string, error) {
	fsys := os.DirFS(c.Dir)
	seen := bloom.NewFilter(indexExpectedFiles, indexFalsePositiveRate)

	var paths []string
	for _, pattern := range c.Patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if seen.Test(m) {
				continue
			}
			seen.Add(m)
			paths = append(paths, m)
		}
	}
	return paths, nil
}
