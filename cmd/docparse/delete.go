package main

import (
	"fmt"

	"github.com/jdidion/docparse"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return docparse.Errorf(docparse.EINVALID, "use --force to confirm deletion")
	}

	entries, err := deps.Entries.FindEntries(deps.Ctx, docparse.EntryFilter{File: &c.File})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docparse.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no entries for %q. Use 'docparse list' to see indexed files.\n", c.File)
		return docparse.Errorf(docparse.ENOTFOUND, "no entries for %q", c.File)
	}

	if err := deps.Entries.DeleteEntriesByFile(deps.Ctx, c.File); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docparse.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %d entries for %q\n", len(entries), c.File)
	return nil
}
