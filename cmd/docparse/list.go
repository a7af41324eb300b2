package main

import (
	"fmt"

	"github.com/jdidion/docparse"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := docparse.EntryFilter{Limit: c.Limit}
	if c.File != "" {
		filter.File = &c.File
	}

	entries, err := deps.Entries.FindEntries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docparse.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No entries found. Use 'docparse index' to build the index.")
		return nil
	}

	for _, entry := range entries {
		symbol := entry.Symbol
		if symbol == "" {
			symbol = "(module)"
		}
		fmt.Fprintf(deps.Stdout, "%s:%d  %s  %s\n", entry.File, entry.Line, symbol, entry.Doc.Summary)
	}

	return nil
}
