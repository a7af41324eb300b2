package main

import (
	"fmt"

	"github.com/jdidion/docparse"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	filter := docparse.EntryFilter{Symbol: &c.Symbol}
	if c.File != "" {
		filter.File = &c.File
	}

	entries, err := deps.Entries.FindEntries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docparse.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintf(deps.Stderr, "error: symbol %q not found. Use 'docparse list' to see indexed entries.\n", c.Symbol)
		return docparse.Errorf(docparse.ENOTFOUND, "symbol %q not found", c.Symbol)
	}

	for _, entry := range entries {
		fmt.Fprintf(deps.Stdout, "%s:%d %s\n", entry.File, entry.Line, entry.Symbol)
		if err := writeJSON(deps.Stdout, entry.Doc); err != nil {
			return err
		}
	}

	return nil
}
