// Package output - Concrete formatters
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"fieldops-cost/core/types"
)

// cliFormatter renders a terminal table
type cliFormatter struct{}

func (f *cliFormatter) Format() Format {
	return FormatCLI
}

func (f *cliFormatter) Render(w io.Writer, result *Result) error {
	b := result.Breakdown
	if b == nil {
		return fmt.Errorf("no breakdown to render")
	}

	if result.Project != nil && result.Project.Name != "" {
		fmt.Fprintf(w, "Project: %s\n\n", result.Project.Name)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tITEMS\tSUBTOTAL\tNOTES")
	for _, c := range types.AllCategories() {
		s := b.Category(c)
		fmt.Fprintf(tw, "%s\t%d\t%s %s\t%s\n",
			c.Label(), s.ItemCount, types.Money(s.Subtotal).StringFixed(2), b.Currency, summaryNote(s))
	}
	fmt.Fprintf(tw, "TOTAL\t\t%s %s\t\n", types.Money(b.GrandTotal).StringFixed(2), b.Currency)
	if err := tw.Flush(); err != nil {
		return err
	}

	if b.Incomplete() {
		fmt.Fprintln(w, "\nEstimate is incomplete: some items have no usable rate or field days is not set.")
	}
	return nil
}

// summaryNote describes a category's incompleteness signals
func summaryNote(s *types.CategorySummary) string {
	switch {
	case s.MissingRate > 0 && s.DaysNotSet:
		return fmt.Sprintf("%d missing rate, days not set", s.MissingRate)
	case s.MissingRate > 0:
		return fmt.Sprintf("%d missing rate", s.MissingRate)
	case s.DaysNotSet:
		return "days not set"
	default:
		return ""
	}
}

// jsonFormatter renders machine-readable JSON
type jsonFormatter struct{}

func (f *jsonFormatter) Format() Format {
	return FormatJSON
}

func (f *jsonFormatter) Render(w io.Writer, result *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// markdownFormatter renders a markdown report suitable for PR comments
// and emailed summaries
type markdownFormatter struct{}

func (f *markdownFormatter) Format() Format {
	return FormatMarkdown
}

func (f *markdownFormatter) Render(w io.Writer, result *Result) error {
	b := result.Breakdown
	if b == nil {
		return fmt.Errorf("no breakdown to render")
	}

	title := "Cost estimate"
	if result.Project != nil && result.Project.Name != "" {
		title = "Cost estimate: " + result.Project.Name
	}
	fmt.Fprintf(w, "## %s\n\n", title)
	fmt.Fprintln(w, "| Category | Items | Subtotal | Notes |")
	fmt.Fprintln(w, "|---|---:|---:|---|")
	for _, c := range types.AllCategories() {
		s := b.Category(c)
		fmt.Fprintf(w, "| %s | %d | %s %s | %s |\n",
			c.Label(), s.ItemCount, types.Money(s.Subtotal).StringFixed(2), b.Currency, summaryNote(s))
	}
	fmt.Fprintf(w, "| **Total** | | **%s %s** | |\n", types.Money(b.GrandTotal).StringFixed(2), b.Currency)
	return nil
}
