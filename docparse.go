// Package docparse extracts structured documentation from free-form
// docstring text. It parses docstrings written in a recognized
// convention (currently Google style) into machine-readable records:
// a summary, per-parameter descriptions with optional type hints, and
// return/raise documentation. It is aimed at tooling authors — doc
// generators, linters, IDE tooltips — that need structured docs
// without writing a parser per project.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency or the
// convention they implement (e.g., google/, sqlite/, python/).
package docparse
