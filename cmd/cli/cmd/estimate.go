// Package cmd - estimate command
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	projectadapter "fieldops-cost/adapters/project"
	"fieldops-cost/core/estimate"
	"fieldops-cost/core/output"
	"fieldops-cost/internal/config"
	"fieldops-cost/internal/logging"
)

var (
	outputFormat string
	ratesPath    string
	fieldDays    float64
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate <project.json>",
	Short: "Estimate costs for a field-operations project",
	Long: `Compute a project cost breakdown from a project estimate file.

The file holds the project's task-phase line items, services, and
crew/equipment/aircraft assignments. When --rates is given, line items
that only reference a rate-card entry are hydrated from the loaded
catalogs before rating.

Examples:
  fieldops-cost estimate ./project.json
  fieldops-cost estimate --rates ./rates ./project.json
  fieldops-cost estimate --format markdown ./project.json
  fieldops-cost estimate --field-days 4 ./project.json`,
	Args: cobra.ExactArgs(1),
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, markdown)")
	estimateCmd.Flags().StringVarP(&ratesPath, "rates", "r", "", "rate-card file or directory")
	estimateCmd.Flags().Float64Var(&fieldDays, "field-days", 0, "override the project's estimated field days")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	start := time.Now()
	cfg := config.Get()

	proj, err := projectadapter.Load(args[0])
	if err != nil {
		return err
	}

	if cat, err := loadCatalogs(ratesPath); err != nil {
		return err
	} else if cat != nil && cat.Len() > 0 {
		filled := cat.HydrateProject(proj)
		logging.Debug("hydrated line items from rate cards",
			zap.Int("filled", filled), zap.Int("entries", cat.Len()))
	}

	if fieldDays > 0 {
		proj.EstimatedFieldDays = decimal.NewFromFloat(fieldDays)
	}

	breakdown := estimate.Estimate(proj, cfg.Currency)

	format := output.Format(outputFormat)
	if outputFormat == "" {
		format = output.Format(cfg.Output.DefaultFormat)
	}
	formatter, ok := output.ForFormat(format)
	if !ok {
		return fmt.Errorf("unknown output format: %s", format)
	}

	result := &output.Result{
		Project:   proj,
		Breakdown: breakdown,
		Metadata: output.Metadata{
			Timestamp: start.UTC().Format(time.RFC3339),
			Duration:  time.Since(start).String(),
			Version:   "0.1.0",
			Source:    "cli",
		},
	}
	return formatter.Render(os.Stdout, result)
}
