// Package engine implements the biomarker interpretation core: it resolves
// what a raw lab value means (identity, unit, reference range), classifies
// it into a severity zone, computes its trend against history, and detects
// manually-entered values superseded by newer lab data.
//
// Every entry point is a pure, total, synchronous function of its
// arguments: unknown labels resolve to a generic descriptor, missing
// reference data yields StatusUnknown, and malformed dates sort as oldest
// instead of failing. The package performs no I/O and holds no mutable
// state, so callers may invoke it concurrently without coordination.
package engine

import (
	"fmt"
	"strings"
)

// Input carries everything one interpretation query needs. History and the
// learned set are read-only to the engine.
type Input struct {
	Label   string
	Value   float64
	Date    string
	Unit    string
	Gender  Gender
	History []MetricPoint
	RefMin  *float64
	RefMax  *float64
	Learned map[Key]LearnedMarker
}

// Analyze runs the full interpretation chain: normalize the label, resolve
// a descriptor, merge ranges, classify, compute the trend, and compose the
// display message.
func Analyze(in Input) AnalysisResult {
	key := Normalize(in.Label)
	desc := Resolve(key, in.Label, in.Learned)
	rng := ResolveRange(in.RefMin, in.RefMax, desc, in.Gender)

	status, color := Classify(in.Value, rng)
	tr := AnalyzeTrend(in.Value, in.Date, in.History)

	result := AnalysisResult{
		Status:       status,
		Trend:        tr.Trend,
		TrendPercent: tr.Percent,
		Delta:        tr.Delta,
		Message:      ComposeMessage(status, tr.Trend, tr.Percent, rng),
		RiskColor:    color,
	}
	if !rng.Empty() {
		result.ActiveRange = &rng
	}
	return result
}

// ContextLine renders a compact one-line summary of a marker for the
// conversational-AI context builder. No patient-identifying data is
// embedded.
func ContextLine(in Input) string {
	key := Normalize(in.Label)
	desc := Resolve(key, in.Label, in.Learned)
	res := Analyze(in)

	unit := in.Unit
	if unit == "" {
		unit = desc.Unit
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s %s (%s)", desc.Label, trimFloat(in.Value), unit, res.Status)
	if res.Trend != TrendUnknown {
		fmt.Fprintf(&b, ", trend %s %+.1f%%", res.Trend, res.TrendPercent)
	}
	return b.String()
}
