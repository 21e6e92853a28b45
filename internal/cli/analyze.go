package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"biomarker-insights/internal/app"
)

var (
	analyzeMarker  string
	analyzeValue   float64
	analyzeDate    string
	analyzeUnit    string
	analyzeRefMin  float64
	analyzeRefMax  float64
	analyzeContext bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Interpret one marker value against its reference range and history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if analyzeMarker == "" {
			return fmt.Errorf("--marker must be provided")
		}

		opts := app.AnalyzeOptions{
			Marker:  analyzeMarker,
			Value:   analyzeValue,
			Date:    analyzeDate,
			Unit:    analyzeUnit,
			Context: analyzeContext,
		}

		if cmd.Flags().Changed("ref-min") {
			v := analyzeRefMin
			opts.RefMin = &v
		}
		if cmd.Flags().Changed("ref-max") {
			v := analyzeRefMax
			opts.RefMax = &v
		}

		return getApp().Analyze(cmd.Context(), opts)
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeMarker, "marker", "", "Marker label as it appears on the lab report")
	analyzeCmd.Flags().Float64Var(&analyzeValue, "value", 0, "Measured value")
	analyzeCmd.Flags().StringVar(&analyzeDate, "date", "", "Measurement date (DD/MM/YYYY, defaults to today)")
	analyzeCmd.Flags().StringVar(&analyzeUnit, "unit", "", "Unit override (defaults to the curated unit)")
	analyzeCmd.Flags().Float64Var(&analyzeRefMin, "ref-min", 0, "Lower bound printed on the lab report")
	analyzeCmd.Flags().Float64Var(&analyzeRefMax, "ref-max", 0, "Upper bound printed on the lab report")
	analyzeCmd.Flags().BoolVar(&analyzeContext, "context", false, "Also print the per-marker AI context summary")

	_ = analyzeCmd.MarkFlagRequired("marker")
	_ = analyzeCmd.MarkFlagRequired("value")
}
