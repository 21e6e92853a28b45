package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"biomarker-insights/internal/engine"
)

// Show prints the stored history of one marker, newest first.
func (a *App) Show(ctx context.Context, opts ShowOptions) error {
	store, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	if store == nil {
		return errors.New("database not configured; cannot show history")
	}
	if closeStore != nil {
		defer closeStore()
	}

	key := engine.Normalize(opts.Marker)
	records, err := store.ListPointsByMarker(ctx, string(key))
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintf(os.Stdout, "no points stored for %s\n", key)
		return nil
	}

	// Newest first for display.
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	if opts.Limit > 0 && len(records) > opts.Limit {
		records = records[:opts.Limit]
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "Date\tValue\tUnit\tLabel\tRef Min\tRef Max")

	for _, rec := range records {
		refMin, refMax := "", ""
		if rec.RefMin != nil {
			refMin = rec.RefMin.String()
		}
		if rec.RefMax != nil {
			refMax = rec.RefMax.String()
		}
		fmt.Fprintf(
			writer,
			"%s\t%s\t%s\t%s\t%s\t%s\n",
			rec.Recorded,
			rec.Value.String(),
			rec.Unit,
			sanitizeInline(rec.Label),
			refMin,
			refMax,
		)
	}

	writer.Flush()
	return nil
}

func sanitizeInline(v string) string {
	cleaned := strings.ReplaceAll(v, "\n", " ")
	cleaned = strings.ReplaceAll(cleaned, "\r", " ")
	return cleaned
}
