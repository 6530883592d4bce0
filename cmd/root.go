package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/addrqa/report-compare/internal/config"
	"github.com/addrqa/report-compare/internal/report"
	"github.com/addrqa/report-compare/internal/table"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "report-compare",
	Short: "Compare address-quality metric reports against a baseline",
	Long:  "Merges a baseline existing-sample report with new ASF/APA/PSF/SSF metric reports and writes one comparison CSV per metric type.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// Exit codes, one per classifiable error kind.
const (
	exitOK                = 0
	exitFailure           = 1
	exitConfig            = 2
	exitMissingFile       = 3
	exitSchema            = 4
	exitUnsupportedMetric = 5
)

// exitCode classifies an error into the process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var (
		cfgErr    *config.ConfigError
		missErr   *report.MissingFileError
		schemaErr *table.SchemaError
		metricErr *report.UnsupportedMetricError
	)
	switch {
	case errors.As(err, &cfgErr):
		return exitConfig
	case errors.As(err, &missErr):
		return exitMissingFile
	case errors.As(err, &schemaErr):
		return exitSchema
	case errors.As(err, &metricErr):
		return exitUnsupportedMetric
	}
	return exitFailure
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}
