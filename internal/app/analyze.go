package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"biomarker-insights/internal/service"
)

// Analyze interprets one value against the marker's stored history and
// prints the result.
func (a *App) Analyze(ctx context.Context, opts AnalyzeOptions) error {
	store, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	if closeStore != nil {
		defer closeStore()
	}
	if store == nil {
		a.Logger.Warn().Msg("database.dsn not configured; analyzing without history or learned markers")
	}

	svc := a.newService(store, nil)

	date := opts.Date
	if date == "" {
		date = time.Now().UTC().Format("02/01/2006")
	}

	analysis, err := svc.Analyze(ctx, service.AnalyzeRequest{
		Label:  opts.Marker,
		Value:  opts.Value,
		Date:   date,
		Unit:   opts.Unit,
		RefMin: opts.RefMin,
		RefMax: opts.RefMax,
	})
	if err != nil {
		return err
	}

	printAnalysis(opts, analysis)

	if opts.Context {
		lines, err := svc.ContextSummary(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "\nAI context:")
		for _, line := range lines {
			fmt.Fprintf(os.Stdout, "  %s\n", line)
		}
	}

	return nil
}

func printAnalysis(opts AnalyzeOptions, analysis service.Analysis) {
	desc := analysis.Descriptor
	res := analysis.Result

	unit := opts.Unit
	if unit == "" {
		unit = desc.Unit
	}

	fmt.Fprintf(os.Stdout, "%s (%s)\n", desc.Label, analysis.Key)
	fmt.Fprintf(os.Stdout, "Value:  %g %s\n", opts.Value, unit)
	if res.ActiveRange != nil {
		min, max := "-", "-"
		if res.ActiveRange.Min != nil {
			min = fmt.Sprintf("%g", *res.ActiveRange.Min)
		}
		if res.ActiveRange.Max != nil {
			max = fmt.Sprintf("%g", *res.ActiveRange.Max)
		}
		fmt.Fprintf(os.Stdout, "Range:  %s – %s\n", min, max)
	}
	fmt.Fprintf(os.Stdout, "Status: %s (%s)\n", res.Status, res.RiskColor)
	fmt.Fprintf(os.Stdout, "%s\n", res.Message)

	if analysis.Stale != nil {
		fmt.Fprintf(os.Stdout, "Note: superseded by a lab result of %g on %s\n", analysis.Stale.ExamValue, analysis.Stale.ExamDate)
	}
	if desc.IsGeneric {
		fmt.Fprintln(os.Stdout, "No curated reference data for this marker; the lab report's own range applies.")
	}
}
