package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"biomarker-insights/internal/app"
)

var (
	showMarker string
	showLimit  int
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display stored history for one marker",
	RunE: func(cmd *cobra.Command, args []string) error {
		if showMarker == "" {
			return fmt.Errorf("--marker must be provided")
		}
		if showLimit <= 0 {
			return fmt.Errorf("--limit must be greater than zero")
		}

		opts := app.ShowOptions{
			Marker: showMarker,
			Limit:  showLimit,
		}

		return getApp().Show(cmd.Context(), opts)
	},
}

func init() {
	showCmd.Flags().StringVar(&showMarker, "marker", "", "Marker label or canonical key")
	showCmd.Flags().IntVar(&showLimit, "limit", 20, "Number of points to display")

	_ = showCmd.MarkFlagRequired("marker")
}
