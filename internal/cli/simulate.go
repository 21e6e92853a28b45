package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"biomarker-insights/internal/app"
)

var (
	simulateMarker string
	simulateValue  float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate-alert",
	Short: "Send a synthetic marker alert through the configured channel",
	RunE: func(cmd *cobra.Command, args []string) error {
		if simulateMarker == "" {
			return errors.New("--marker must be provided")
		}

		opts := app.SimulateOptions{
			Marker: simulateMarker,
			Value:  simulateValue,
		}

		return getApp().SimulateAlert(cmd.Context(), opts)
	},
}

func init() {
	simulateCmd.Flags().StringVar(&simulateMarker, "marker", "", "Marker label to simulate")
	simulateCmd.Flags().Float64Var(&simulateValue, "value", 0, "Measured value to classify")

	_ = simulateCmd.MarkFlagRequired("marker")
	_ = simulateCmd.MarkFlagRequired("value")
}
