package storage

import (
	"time"

	"github.com/shopspring/decimal"

	"biomarker-insights/internal/engine"
)

// MetricRecord is one persisted observation of a marker. Recorded keeps the
// original date string from the source (DD/MM/YYYY from documents, ISO from
// the app) because the engine parses it itself.
type MetricRecord struct {
	ID        int64
	MarkerKey string
	Recorded  string
	Value     decimal.Decimal
	Unit      string
	Label     string
	RefMin    *decimal.Decimal
	RefMax    *decimal.Decimal
	CreatedAt time.Time
}

// ToPoint converts a stored record into the engine's input shape.
func (r MetricRecord) ToPoint() engine.MetricPoint {
	p := engine.MetricPoint{
		Date:      r.Recorded,
		Value:     r.Value.InexactFloat64(),
		Unit:      r.Unit,
		Label:     r.Label,
		CreatedAt: r.CreatedAt,
	}
	if r.RefMin != nil {
		v := r.RefMin.InexactFloat64()
		p.RefMin = &v
	}
	if r.RefMax != nil {
		v := r.RefMax.InexactFloat64()
		p.RefMax = &v
	}
	return p
}

// LearnedMarkerRecord is an externally-sourced descriptor persisted after a
// knowledge-lookup collaborator resolved an unknown marker.
type LearnedMarkerRecord struct {
	MarkerKey string
	Label     string
	Unit      string
	MaleMin   *decimal.Decimal
	MaleMax   *decimal.Decimal
	FemaleMin *decimal.Decimal
	FemaleMax *decimal.Decimal
	SourceURL string
	CreatedAt time.Time
}

// ToLearned converts a stored record into the engine's learned-marker shape.
func (r LearnedMarkerRecord) ToLearned() engine.LearnedMarker {
	lm := engine.LearnedMarker{
		Key:       engine.Key(r.MarkerKey),
		Label:     r.Label,
		Unit:      r.Unit,
		SourceURL: r.SourceURL,
	}
	lm.MaleMin = decimalPtr(r.MaleMin)
	lm.MaleMax = decimalPtr(r.MaleMax)
	lm.FemaleMin = decimalPtr(r.FemaleMin)
	lm.FemaleMax = decimalPtr(r.FemaleMax)
	return lm
}

func decimalPtr(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	v := d.InexactFloat64()
	return &v
}
