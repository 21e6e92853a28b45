package engine

import (
	"sort"
	"time"
)

// Trend thresholds: percent change beyond which the direction is reported
// as rising or falling rather than stable.
const trendBandPct = 5.0

// TrendResult carries the delta against the immediately preceding point.
type TrendResult struct {
	Trend   Trend
	Percent float64
	Delta   float64
}

var dateLayouts = []string{
	"02/01/2006",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses the two date shapes points carry (DD/MM/YYYY and
// ISO-8601). Unparsable input degrades to the Unix epoch so it sorts first
// instead of failing.
func ParseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Unix(0, 0).UTC()
}

func sortByDateAsc(history []MetricPoint) []MetricPoint {
	sorted := make([]MetricPoint, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return ParseDate(sorted[i].Date).Before(ParseDate(sorted[j].Date))
	})
	return sorted
}

// AnalyzeTrend computes direction, delta, and percent change for the given
// observation against the point that chronologically precedes it. The
// observation is located in the sorted history by matching both date string
// and value; when duplicates share both, the first match is used.
func AnalyzeTrend(value float64, date string, history []MetricPoint) TrendResult {
	out := TrendResult{Trend: TrendUnknown}
	if len(history) < 2 {
		return out
	}

	sorted := sortByDateAsc(history)

	idx := -1
	for i, p := range sorted {
		if p.Date == date && p.Value == value {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return out
	}

	prev := sorted[idx-1]
	out.Delta = value - prev.Value
	if prev.Value == 0 {
		return out
	}

	out.Percent = out.Delta / prev.Value * 100
	switch {
	case out.Percent > trendBandPct:
		out.Trend = TrendUp
	case out.Percent < -trendBandPct:
		out.Trend = TrendDown
	default:
		out.Trend = TrendStable
	}
	return out
}
