package engine

import (
	"fmt"
	"strings"
)

// ComposeMessage renders a classification plus trend into the single status
// line shown in tooltips and detail panels. Templates are fixed per status;
// a trend clause is appended whenever the trend is known.
func ComposeMessage(status Status, trend Trend, trendPercent float64, rng ResolvedRange) string {
	var b strings.Builder

	switch status {
	case StatusNormal:
		b.WriteString("Ideal, far from limits")
	case StatusCriticalLow, StatusCriticalHigh:
		b.WriteString(fmt.Sprintf("CRITICAL: exceeded the reference range (%s)", formatRange(rng)))
	case StatusLow:
		b.WriteString("ATTENTION: very close to the lower limit (<10%)")
	case StatusHigh:
		b.WriteString("ATTENTION: very close to the upper limit (<10%)")
	case StatusBorderlineLow:
		b.WriteString("ALERT: approaching the lower limit (10-20%)")
	case StatusBorderlineHigh:
		b.WriteString("ALERT: approaching the upper limit (10-20%)")
	default:
		b.WriteString("No reference range available for this marker")
	}

	if trend != TrendUnknown {
		b.WriteString(" · ")
		b.WriteString(trendMarker(trend))
		b.WriteString(fmt.Sprintf(" %+.1f%% vs previous", trendPercent))
	}

	return b.String()
}

func trendMarker(trend Trend) string {
	switch trend {
	case TrendUp:
		return "↑"
	case TrendDown:
		return "↓"
	default:
		return "→"
	}
}

func formatRange(rng ResolvedRange) string {
	switch {
	case rng.Min != nil && rng.Max != nil:
		return fmt.Sprintf("%s–%s", trimFloat(*rng.Min), trimFloat(*rng.Max))
	case rng.Min != nil:
		return fmt.Sprintf("min %s", trimFloat(*rng.Min))
	case rng.Max != nil:
		return fmt.Sprintf("max %s", trimFloat(*rng.Max))
	default:
		return "n/a"
	}
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
