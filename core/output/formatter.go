// Package output provides cost breakdown formatting.
// This package produces human and machine-readable renderings of an
// estimation result; it performs no cost logic of its own.
package output

import (
	"io"

	"fieldops-cost/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *Result) error
}

// Result contains the complete estimation output handed to formatters
type Result struct {
	// Project is the estimated project
	Project *types.Project `json:"project,omitempty"`

	// Breakdown is the computed cost breakdown
	Breakdown *types.CostBreakdown `json:"breakdown"`

	// Metadata contains execution context
	Metadata Metadata `json:"metadata"`
}

// Metadata contains execution context for a rendered estimate
type Metadata struct {
	// Timestamp is when the estimation was performed
	Timestamp string `json:"timestamp"`

	// Duration is how long the estimation took
	Duration string `json:"duration"`

	// Version is the tool version
	Version string `json:"version"`

	// Source is the input source (cli, api)
	Source string `json:"source,omitempty"`
}

// ForFormat returns the formatter for a format type
func ForFormat(f Format) (Formatter, bool) {
	switch f {
	case FormatCLI:
		return &cliFormatter{}, true
	case FormatJSON:
		return &jsonFormatter{}, true
	case FormatMarkdown:
		return &markdownFormatter{}, true
	default:
		return nil, false
	}
}
