package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func classifyIn(value, min, max float64) Status {
	status, _ := Classify(value, ResolvedRange{Min: ptr(min), Max: ptr(max)})
	return status
}

func TestClassifyUnknownWithoutRange(t *testing.T) {
	status, color := Classify(50, ResolvedRange{})
	assert.Equal(t, StatusUnknown, status)
	assert.Equal(t, ColorGray, color)
}

func TestClassifyBoundaryExample(t *testing.T) {
	// Range [70, 130]: span 60, orange buffer 6, yellow buffer 12.
	assert.Equal(t, StatusCriticalLow, classifyIn(69.9, 70, 130))
	assert.Equal(t, StatusLow, classifyIn(75, 70, 130))
	assert.Equal(t, StatusLow, classifyIn(76, 70, 130)) // boundary hits the earlier rule
	assert.Equal(t, StatusBorderlineLow, classifyIn(80, 70, 130))
	assert.Equal(t, StatusBorderlineLow, classifyIn(82, 70, 130))
	assert.Equal(t, StatusNormal, classifyIn(100, 70, 130))
	assert.Equal(t, StatusBorderlineHigh, classifyIn(118, 70, 130))
	assert.Equal(t, StatusHigh, classifyIn(124, 70, 130))
	assert.Equal(t, StatusHigh, classifyIn(130, 70, 130))
	assert.Equal(t, StatusCriticalHigh, classifyIn(130.1, 70, 130))
}

func TestClassifyDegenerateRange(t *testing.T) {
	assert.Equal(t, StatusNormal, classifyIn(100, 100, 100))
	assert.Equal(t, StatusCriticalHigh, classifyIn(101, 100, 100))
	assert.Equal(t, StatusCriticalLow, classifyIn(99, 100, 100))
}

func TestClassifyOneSidedUsesBinaryLogic(t *testing.T) {
	// Max-only range (e.g. LDL): the sentinel makes the span unbounded, so
	// no buffer zones apply.
	maxOnly := ResolvedRange{Max: ptr(130)}
	status, color := Classify(129, maxOnly)
	assert.Equal(t, StatusNormal, status)
	assert.Equal(t, ColorEmerald, color)

	status, color = Classify(131, maxOnly)
	assert.Equal(t, StatusCriticalHigh, status)
	assert.Equal(t, ColorRed, color)

	minOnly := ResolvedRange{Min: ptr(40)}
	status, _ = Classify(39, minOnly)
	assert.Equal(t, StatusCriticalLow, status)
	status, _ = Classify(55, minOnly)
	assert.Equal(t, StatusNormal, status)
}

func TestClassifyPartitionNoGapsNoOverlaps(t *testing.T) {
	const min, max = 70.0, 130.0
	for v := min - 1; v <= max+1; v += 0.01 {
		status, color := Classify(v, ResolvedRange{Min: ptr(min), Max: ptr(max)})
		assert.NotEqual(t, StatusUnknown, status, "value %f", v)
		assert.NotEqual(t, ColorGray, color, "value %f", v)
	}
}

func TestClassifyColors(t *testing.T) {
	cases := []struct {
		value float64
		color RiskColor
	}{
		{60, ColorRed},
		{75, ColorOrange},
		{80, ColorYellow},
		{100, ColorEmerald},
		{120, ColorYellow},
		{126, ColorOrange},
		{140, ColorRed},
	}
	for _, tc := range cases {
		_, color := Classify(tc.value, ResolvedRange{Min: ptr(70), Max: ptr(130)})
		assert.Equal(t, tc.color, color, "value %f", tc.value)
	}
}
