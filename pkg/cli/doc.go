// Package cli provides output and formatting helpers for the
// smallstring command line tools: structured export of results as YAML
// or JSON, human-readable size/rate/duration formatting, and a styled
// terminal table.
package cli
