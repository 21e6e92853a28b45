package engine

const (
	// UnboundedSpan marks a range as effectively one-sided: spans larger
	// than this only occur when a missing bound was replaced by the
	// ±BoundSentinel, so the buffer zones are meaningless.
	UnboundedSpan = 100_000

	orangeBufferRatio = 0.10
	yellowBufferRatio = 0.20
)

// Classify places a value into one of the seven severity bands of its
// effective range, or StatusUnknown when the range is empty. Predicates are
// evaluated in order; a boundary value resolves to the earlier rule.
func Classify(value float64, rng ResolvedRange) (Status, RiskColor) {
	min, max, ok := rng.Bounds()
	if !ok {
		return StatusUnknown, ColorGray
	}

	span := max - min
	if span <= 0 || span > UnboundedSpan {
		switch {
		case value < min:
			return StatusCriticalLow, ColorRed
		case value > max:
			return StatusCriticalHigh, ColorRed
		default:
			return StatusNormal, ColorEmerald
		}
	}

	orangeBuffer := orangeBufferRatio * span
	yellowBuffer := yellowBufferRatio * span

	switch {
	case value < min:
		return StatusCriticalLow, ColorRed
	case value > max:
		return StatusCriticalHigh, ColorRed
	case value <= min+orangeBuffer:
		return StatusLow, ColorOrange
	case value >= max-orangeBuffer:
		return StatusHigh, ColorOrange
	case value <= min+yellowBuffer:
		return StatusBorderlineLow, ColorYellow
	case value >= max-yellowBuffer:
		return StatusBorderlineHigh, ColorYellow
	default:
		return StatusNormal, ColorEmerald
	}
}
