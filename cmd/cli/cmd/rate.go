// Package cmd - rate command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	projectadapter "fieldops-cost/adapters/project"
	"fieldops-cost/core/rating"
	"fieldops-cost/core/types"
	"fieldops-cost/internal/config"
)

var rateJSON bool

// rateCmd rates a single line item
var rateCmd = &cobra.Command{
	Use:   "rate <line-item.json>",
	Short: "Compute a single line item's total",
	Long: `Rate one priced line item: base cost from the selected rate kind
(with volume tiers for per-unit), plus base fee and selected
deliverables, times the composed modifiers, with the minimum-charge
floor applied.

Examples:
  fieldops-cost rate ./line-item.json
  fieldops-cost rate --json ./line-item.json`,
	Args: cobra.ExactArgs(1),
	RunE: runRate,
}

func init() {
	rateCmd.Flags().BoolVar(&rateJSON, "json", false, "emit machine-readable JSON")
}

func runRate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	item, err := projectadapter.ParseLineItem(data)
	if err != nil {
		return err
	}

	total := rating.LineTotal(item)
	scale := rating.ComposeModifiers(item.Modifiers)
	currency := config.Get().Currency

	if rateJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]string{
			"total":    types.Money(total).StringFixed(2),
			"scale":    scale.String(),
			"currency": currency.String(),
		})
	}

	if item.Name != "" {
		fmt.Printf("Line item: %s\n", item.Name)
	}
	if len(item.Modifiers) > 0 {
		fmt.Printf("Modifiers: x%s\n", scale.String())
	}
	fmt.Printf("Total: %s %s\n", types.Money(total).StringFixed(2), currency)
	return nil
}
