package app

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"biomarker-insights/internal/engine"
	"biomarker-insights/internal/storage"
)

// Import bulk-loads extracted lab points from a CSV file. Expected columns:
// label,date,value,unit,ref_min,ref_max (ref bounds optional). The marker
// key is derived from the label, never supplied directly.
func (a *App) Import(ctx context.Context, opts ImportOptions) error {
	file, err := os.Open(opts.CSVPath)
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	var store *storage.Store
	if opts.DryRun {
		a.Logger.Warn().Msg("import dry-run: nothing will be written")
	} else {
		var closeStore func()
		store, closeStore, err = a.openStore(ctx)
		if err != nil {
			return err
		}
		if store == nil {
			return errors.New("database.dsn not configured; cannot import")
		}
		if closeStore != nil {
			defer closeStore()
		}
	}

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read csv header: %w", err)
	}
	cols, err := mapColumns(header)
	if err != nil {
		return err
	}

	imported := 0
	skipped := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read csv row: %w", err)
		}

		rec, err := rowToRecord(row, cols)
		if err != nil {
			skipped++
			a.Logger.Warn().Err(err).Strs("row", row).Msg("skipping malformed row")
			continue
		}

		if store != nil {
			if err := store.UpsertMetricPoint(ctx, rec); err != nil {
				return err
			}
		}
		imported++
	}

	a.Logger.Info().Int("imported", imported).Int("skipped", skipped).Msg("import finished")
	return nil
}

type columnIndex struct {
	label, date, value, unit, refMin, refMax int
}

func mapColumns(header []string) (columnIndex, error) {
	cols := columnIndex{label: -1, date: -1, value: -1, unit: -1, refMin: -1, refMax: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "label", "marker":
			cols.label = i
		case "date", "recorded":
			cols.date = i
		case "value":
			cols.value = i
		case "unit":
			cols.unit = i
		case "ref_min":
			cols.refMin = i
		case "ref_max":
			cols.refMax = i
		}
	}
	if cols.label < 0 || cols.date < 0 || cols.value < 0 {
		return cols, errors.New("csv must carry label, date, and value columns")
	}
	return cols, nil
}

func rowToRecord(row []string, cols columnIndex) (storage.MetricRecord, error) {
	get := func(idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	label := get(cols.label)
	if label == "" {
		return storage.MetricRecord{}, errors.New("empty label")
	}

	value, err := decimal.NewFromString(get(cols.value))
	if err != nil {
		return storage.MetricRecord{}, fmt.Errorf("parse value: %w", err)
	}

	rec := storage.MetricRecord{
		MarkerKey: string(engine.Normalize(label)),
		Recorded:  get(cols.date),
		Value:     value,
		Unit:      get(cols.unit),
		Label:     label,
	}
	if rec.Recorded == "" {
		return storage.MetricRecord{}, errors.New("empty date")
	}

	if raw := get(cols.refMin); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return storage.MetricRecord{}, fmt.Errorf("parse ref_min: %w", err)
		}
		rec.RefMin = &d
	}
	if raw := get(cols.refMax); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return storage.MetricRecord{}, fmt.Errorf("parse ref_max: %w", err)
		}
		rec.RefMax = &d
	}

	return rec, nil
}
