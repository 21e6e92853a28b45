package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"biomarker-insights/internal/app"
)

var (
	exportMarker    string
	exportPNGPath   string
	exportCSVPath   string
	exportMaxPoints int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a marker's history as CSV and/or PNG chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportMarker == "" {
			return fmt.Errorf("--marker must be provided")
		}

		opts := app.ExportOptions{
			Marker:    exportMarker,
			PNGPath:   exportPNGPath,
			CSVPath:   exportCSVPath,
			MaxPoints: exportMaxPoints,
		}

		return getApp().Export(cmd.Context(), opts)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportMarker, "marker", "", "Marker label or canonical key")
	exportCmd.Flags().StringVar(&exportPNGPath, "png", "", "Path to write PNG chart")
	exportCmd.Flags().StringVar(&exportCSVPath, "csv", "", "Path to write CSV data")
	exportCmd.Flags().IntVar(&exportMaxPoints, "max-points", 0, "Maximum data points to export (defaults to config)")

	_ = exportCmd.MarkFlagRequired("marker")
}
