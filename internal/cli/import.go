package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"biomarker-insights/internal/app"
)

var (
	importCSVPath string
	importDryRun  bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import extracted lab points from a CSV file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if importCSVPath == "" {
			return fmt.Errorf("--csv must be provided")
		}

		opts := app.ImportOptions{
			CSVPath: importCSVPath,
			DryRun:  importDryRun,
		}

		return getApp().Import(cmd.Context(), opts)
	},
}

func init() {
	importCmd.Flags().StringVar(&importCSVPath, "csv", "", "Path to the CSV file to import")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Parse and validate without writing to storage")

	_ = importCmd.MarkFlagRequired("csv")
}
