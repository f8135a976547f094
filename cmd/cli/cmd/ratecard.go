// Package cmd - ratecard commands
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	ratecardadapter "fieldops-cost/adapters/ratecard"
	"fieldops-cost/core/catalog"
	"fieldops-cost/core/types"
	"fieldops-cost/internal/config"
	"fieldops-cost/internal/errors"
)

var ratecardPath string

// ratecardCmd groups rate-card inspection commands
var ratecardCmd = &cobra.Command{
	Use:   "ratecard",
	Short: "Inspect loaded rate cards",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// ratecardListCmd lists catalog entries
var ratecardListCmd = &cobra.Command{
	Use:   "list",
	Short: "List rate-card entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalogs(ratecardPath)
		if err != nil {
			return err
		}
		if cat.Len() == 0 {
			fmt.Println("No rate cards loaded.")
			return nil
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tRATE KINDS")
		for _, id := range cat.IDs() {
			e, _ := cat.Lookup(id)
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Category, kindList(e.Kinds))
		}
		return tw.Flush()
	},
}

// ratecardShowCmd prints one entry in full
var ratecardShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one rate-card entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalogs(ratecardPath)
		if err != nil {
			return err
		}
		e, ok := cat.Lookup(args[0])
		if !ok {
			return errors.NotFound("rate card", args[0])
		}

		fmt.Printf("%s (%s)\n", e.Name, e.ID)
		if e.Category != "" {
			fmt.Printf("Category: %s\n", e.Category)
		}
		for _, k := range e.Kinds {
			unit := ""
			if k == types.RatePerUnit && e.Rates.UnitType != "" {
				unit = " per " + e.Rates.UnitType
			}
			fmt.Printf("  %-8s %s%s\n", k, types.Money(e.Rates.Rate(k)).StringFixed(2), unit)
		}
		if e.BaseFee.IsPositive() {
			fmt.Printf("Base fee: %s\n", types.Money(e.BaseFee).StringFixed(2))
		}
		if e.MinimumCharge.IsPositive() {
			fmt.Printf("Minimum charge: %s\n", types.Money(e.MinimumCharge).StringFixed(2))
		}
		for _, t := range e.Tiers {
			if t.Unbounded() {
				fmt.Printf("  tier: above, %s/unit\n", t.Rate.StringFixed(2))
			} else {
				fmt.Printf("  tier: up to %s, %s/unit\n", t.UpTo.String(), t.Rate.StringFixed(2))
			}
		}
		for _, d := range e.Deliverables {
			if d.Included {
				fmt.Printf("  deliverable: %s (included)\n", d.Name)
			} else {
				fmt.Printf("  deliverable: %s (+%s)\n", d.Name, types.Money(d.Price).StringFixed(2))
			}
		}
		return nil
	},
}

func init() {
	ratecardCmd.PersistentFlags().StringVarP(&ratecardPath, "rates", "r", "", "rate-card file or directory")
	ratecardCmd.AddCommand(ratecardListCmd)
	ratecardCmd.AddCommand(ratecardShowCmd)
}

// loadCatalogs loads default rate cards (flag path, or configured paths)
// and layers the configured organization overrides on top
func loadCatalogs(flagPath string) (*catalog.Catalog, error) {
	cfg := config.Get()
	loader := ratecardadapter.NewLoader()

	paths := cfg.RateCards.Paths
	if flagPath != "" {
		paths = []string{flagPath}
	}

	merged := catalog.New()
	for _, p := range paths {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			continue
		}
		cat, err := loader.LoadPath(p)
		if err != nil {
			return nil, err
		}
		merged = catalog.Merge(merged, cat)
	}

	if cfg.RateCards.OverridePath != "" {
		if _, err := os.Stat(cfg.RateCards.OverridePath); err == nil {
			overrides, err := loader.LoadPath(cfg.RateCards.OverridePath)
			if err != nil {
				return nil, err
			}
			merged = catalog.Merge(merged, overrides)
		}
	}
	return merged, nil
}

func kindList(kinds []types.RateKind) string {
	if len(kinds) == 0 {
		return "(none)"
	}
	s := ""
	for i, k := range kinds {
		if i > 0 {
			s += ", "
		}
		s += k.String()
	}
	return s
}
