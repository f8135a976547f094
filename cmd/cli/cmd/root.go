// Package cmd provides the CLI commands for fieldops-cost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fieldops-cost/internal/config"
	"fieldops-cost/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fieldops-cost",
	Short: "Rate line items and estimate field-operations project costs",
	Long: `fieldops-cost is a deterministic cost rating and estimation tool
for field-operations projects.

It rates heterogeneous priced line items (fixed, hourly, daily, weekly,
per-unit with volume tiers, add-on deliverables, modifiers, minimum
charges) and aggregates them with crew, equipment, and aircraft day
rates into a project cost breakdown.

Examples:
  fieldops-cost estimate ./project.json
  fieldops-cost estimate --rates ./rates --format json ./project.json
  fieldops-cost rate ./line-item.json
  fieldops-cost ratecard list --rates ./rates`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.fieldops-cost.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(rateCmd)
	rootCmd.AddCommand(ratecardCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("fieldops-cost version 0.1.0")
	},
}
