package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeTrendDown(t *testing.T) {
	history := []MetricPoint{
		{Date: "01/01/2024", Value: 500},
		{Date: "01/02/2024", Value: 450},
	}

	tr := AnalyzeTrend(450, "01/02/2024", history)

	assert.Equal(t, TrendDown, tr.Trend)
	assert.Equal(t, -50.0, tr.Delta)
	assert.Equal(t, -10.0, tr.Percent)
}

func TestAnalyzeTrendStableWithinBand(t *testing.T) {
	history := []MetricPoint{
		{Date: "01/01/2024", Value: 100},
		{Date: "01/02/2024", Value: 104},
	}

	tr := AnalyzeTrend(104, "01/02/2024", history)

	assert.Equal(t, TrendStable, tr.Trend)
	assert.Equal(t, 4.0, tr.Percent)
}

func TestAnalyzeTrendUpBeyondBand(t *testing.T) {
	history := []MetricPoint{
		{Date: "01/01/2024", Value: 100},
		{Date: "01/02/2024", Value: 110},
	}

	tr := AnalyzeTrend(110, "01/02/2024", history)

	assert.Equal(t, TrendUp, tr.Trend)
	assert.Equal(t, 10.0, tr.Percent)
}

func TestAnalyzeTrendZeroPreviousGuard(t *testing.T) {
	history := []MetricPoint{
		{Date: "01/01/2024", Value: 0},
		{Date: "01/02/2024", Value: 50},
	}

	tr := AnalyzeTrend(50, "01/02/2024", history)

	assert.Equal(t, TrendUnknown, tr.Trend)
	assert.Equal(t, 50.0, tr.Delta)
	assert.Zero(t, tr.Percent)
}

func TestAnalyzeTrendNoEarlierPoint(t *testing.T) {
	history := []MetricPoint{
		{Date: "01/01/2024", Value: 500},
		{Date: "01/02/2024", Value: 450},
	}

	tr := AnalyzeTrend(500, "01/01/2024", history)
	assert.Equal(t, TrendUnknown, tr.Trend)

	tr = AnalyzeTrend(500, "05/05/2024", history) // not in history
	assert.Equal(t, TrendUnknown, tr.Trend)
}

func TestAnalyzeTrendIgnoresInputOrder(t *testing.T) {
	// History arrives unsorted; ordering is always by parsed date.
	history := []MetricPoint{
		{Date: "01/03/2024", Value: 400},
		{Date: "01/01/2024", Value: 500},
		{Date: "01/02/2024", Value: 450},
	}

	tr := AnalyzeTrend(400, "01/03/2024", history)

	assert.Equal(t, TrendDown, tr.Trend)
	assert.Equal(t, -50.0, tr.Delta)
}

func TestAnalyzeTrendMixedDateFormats(t *testing.T) {
	history := []MetricPoint{
		{Date: "2024-01-01T10:00:00Z", Value: 100},
		{Date: "01/02/2024", Value: 120},
	}

	tr := AnalyzeTrend(120, "01/02/2024", history)

	assert.Equal(t, TrendUp, tr.Trend)
	assert.Equal(t, 20.0, tr.Delta)
}

func TestAnalyzeTrendUnparsableDateSortsFirst(t *testing.T) {
	history := []MetricPoint{
		{Date: "garbage", Value: 90},
		{Date: "01/01/2024", Value: 100},
	}

	tr := AnalyzeTrend(100, "01/01/2024", history)

	// The unparsable date degrades to the epoch, so it counts as the
	// earlier observation instead of failing.
	assert.Equal(t, TrendUp, tr.Trend)
	assert.Equal(t, 10.0, tr.Delta)
}

func TestParseDate(t *testing.T) {
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), ParseDate("15/03/2024"))
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), ParseDate("2024-03-15"))
	assert.Equal(t, time.Unix(0, 0).UTC(), ParseDate("not a date"))
	assert.Equal(t, time.Unix(0, 0).UTC(), ParseDate(""))
}
