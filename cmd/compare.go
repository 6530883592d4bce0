package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/addrqa/report-compare/internal/report"
)

var (
	compareMetric string
	compareOutput string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare baseline and new metric reports",
	Long: `Merges the configured baseline (existing sample) report with the
new metric reports for the chosen metric family and writes one
<metric>_comparison.csv per family to the output directory.

Without --metric an interactive menu asks which family to compare.

Examples:
  # Interactive menu
  report-compare compare

  # Scripted single family
  report-compare compare --metric psf

  # Everything, into a different directory
  report-compare compare --metric all --output /tmp/comparisons`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		log := zap.L().With(zap.String("invocation_id", uuid.NewString()))

		if err := cfg.Validate(); err != nil {
			return err
		}
		log.Info("configuration loaded",
			zap.String("input_directory", cfg.InputDirectory),
			zap.String("output_directory", cfg.OutputDirectory),
		)

		choice := compareMetric
		if choice == "" {
			m, err := promptMetric(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			choice = string(m)
		}
		metric, err := report.ParseMetric(choice)
		if err != nil {
			return err
		}
		log.Info("metric selected", zap.String("metric", string(metric)))

		if err := report.ValidateSources(cfg, metric); err != nil {
			return err
		}
		log.Info("source files validated")

		comparisons, err := report.CompareAll(ctx, cfg, metric)
		if err != nil {
			return err
		}

		outDir := cfg.OutputDirectory
		if compareOutput != "" {
			outDir = compareOutput
		}
		written, err := report.WriteComparisons(comparisons, outDir)
		for _, p := range written {
			log.Info("comparison saved", zap.String("path", p))
		}
		return err
	},
}

func init() {
	compareCmd.Flags().StringVar(&compareMetric, "metric", "", "metric family to compare (asf|apa|psf|ssf|all); prompts when omitted")
	compareCmd.Flags().StringVar(&compareOutput, "output", "", "output directory (defaults to configured output_directory)")
	rootCmd.AddCommand(compareCmd)
}
