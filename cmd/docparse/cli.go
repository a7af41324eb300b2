package main

import (
	"context"
	"io"

	"github.com/jdidion/docparse"
	"github.com/jdidion/docparse/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Entries   docparse.EntryService
	Parser    docparse.Parser
	Registry  *docparse.ParserRegistry
	Extractor docparse.Extractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Parse  ParseCmd  `cmd:"" help:"Parse a docstring and print the structured record as JSON"`
	Index  IndexCmd  `cmd:"" help:"Extract and parse docstrings from Python sources into the index"`
	List   ListCmd   `cmd:"" help:"List indexed docstring entries"`
	Show   ShowCmd   `cmd:"" help:"Show the parsed record for a symbol"`
	Delete DeleteCmd `cmd:"" help:"Delete indexed entries for a file"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Path   string `arg:"" optional:"" help:"File to read; '-' or omitted reads stdin"`
	Python bool   `short:"y" help:"Treat input as Python source and extract every docstring"`
	Style  string `short:"s" default:"google" help:"Docstring style"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Dir         string   `arg:"" help:"Root directory to scan"`
	Patterns    []string `short:"p" name:"pattern" default:"**/*.py" help:"Glob pattern relative to the root (repeatable)"`
	Concurrency int      `short:"c" default:"8" help:"Concurrent file limit"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	File  string `short:"f" help:"Only entries for this file"`
	Limit int    `short:"n" help:"Maximum number of entries to print"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Symbol string `arg:"" help:"Qualified symbol name"`
	File   string `short:"f" help:"Disambiguate by file"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	File  string `arg:"" help:"File whose entries to delete"`
	Force bool   `help:"Confirm deletion"`
}
