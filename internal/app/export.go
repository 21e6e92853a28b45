package app

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"biomarker-insights/internal/engine"
	"biomarker-insights/internal/storage"
)

// Export renders one marker's history as CSV and/or PNG with the effective
// reference band drawn alongside.
func (a *App) Export(ctx context.Context, opts ExportOptions) error {
	if opts.CSVPath == "" && opts.PNGPath == "" {
		return errors.New("at least one of --csv or --png must be provided")
	}

	opts.MaxPoints = a.Config.ResolveMaxPoints(opts.MaxPoints)

	store, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	if store == nil {
		return errors.New("database not configured; cannot export")
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
		a.Logger.Info().Str("marker", string(key)).Msg("no points stored for marker")
		return nil
	}

	sort.SliceStable(records, func(i, j int) bool {
		return engine.ParseDate(records[i].Recorded).Before(engine.ParseDate(records[j].Recorded))
	})

	downsampled := downsampleRecords(records, opts.MaxPoints)
	a.Logger.Info().Int("total", len(records)).Int("exported", len(downsampled)).Str("marker", string(key)).Msg("exporting history")

	if opts.CSVPath != "" {
		if err := writeHistoryCSV(opts.CSVPath, downsampled); err != nil {
			return err
		}
	}

	if opts.PNGPath != "" {
		desc := engine.Resolve(key, opts.Marker, nil)
		rng := engine.ResolveRange(nil, nil, desc, engine.Gender(a.Config.Profile.Gender))
		if err := writeHistoryPNG(opts.PNGPath, desc, rng, downsampled); err != nil {
			return err
		}
	}

	return nil
}

func downsampleRecords(records []storage.MetricRecord, max int) []storage.MetricRecord {
	if max <= 0 || len(records) <= max {
		return records
	}

	result := make([]storage.MetricRecord, 0, max)
	step := float64(len(records)-1) / float64(max-1)
	for i := 0; i < max; i++ {
		idx := int(math.Round(step * float64(i)))
		if idx >= len(records) {
			idx = len(records) - 1
		}
		result = append(result, records[idx])
	}
	return result
}

func writeHistoryCSV(path string, records []storage.MetricRecord) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"recorded", "value", "unit", "label", "ref_min", "ref_max"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, rec := range records {
		refMin, refMax := "", ""
		if rec.RefMin != nil {
			refMin = rec.RefMin.String()
		}
		if rec.RefMax != nil {
			refMax = rec.RefMax.String()
		}
		record := []string{
			rec.Recorded,
			rec.Value.String(),
			rec.Unit,
			rec.Label,
			refMin,
			refMax,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return writer.Error()
}

func writeHistoryPNG(path string, desc engine.Descriptor, rng engine.ResolvedRange, records []storage.MetricRecord) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	x := make([]time.Time, len(records))
	values := make([]float64, len(records))
	for i, rec := range records {
		x[i] = engine.ParseDate(rec.Recorded)
		values[i] = rec.Value.InexactFloat64()
	}

	valueFormatter := func(v interface{}) string {
		return chart.FloatValueFormatterWithFormat(v, "%.2f")
	}
	series := []chart.Series{
		chart.TimeSeries{
			Name:    desc.Label,
			XValues: x,
			YValues: values,
		},
	}
	if rng.Min != nil {
		series = append(series, chart.TimeSeries{
			Name:    fmt.Sprintf("Ref min (%g)", *rng.Min),
			XValues: x,
			YValues: constantSeries(*rng.Min, len(x)),
		})
	}
	if rng.Max != nil {
		series = append(series, chart.TimeSeries{
			Name:    fmt.Sprintf("Ref max (%g)", *rng.Max),
			XValues: x,
			YValues: constantSeries(*rng.Max, len(x)),
		})
	}

	yAxisName := desc.Label
	if desc.Unit != "" {
		yAxisName = fmt.Sprintf("%s (%s)", desc.Label, desc.Unit)
	}
	graph := chart.Chart{
		Width:  1280,
		Height: 720,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatter,
		},
		YAxis: chart.YAxis{
			Name:           yAxisName,
			ValueFormatter: valueFormatter,
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}

func constantSeries(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
