package engine

// BoundSentinel substitutes for a missing bound when only one side of the
// effective range is defined, so that only the defined side constrains
// classification.
const BoundSentinel = 999_999

// ResolvedRange is the effective [min, max] after merging the point's
// document-extracted bounds with the descriptor's ranges. Either side may
// remain nil when no source defined it.
type ResolvedRange struct {
	Min *float64
	Max *float64
}

// Empty reports whether neither bound is defined.
func (r ResolvedRange) Empty() bool { return r.Min == nil && r.Max == nil }

// Bounds returns concrete classification limits, substituting the sentinel
// for a missing side. ok is false when the range is empty.
func (r ResolvedRange) Bounds() (min, max float64, ok bool) {
	if r.Empty() {
		return 0, 0, false
	}
	min, max = -BoundSentinel, BoundSentinel
	if r.Min != nil {
		min = *r.Min
	}
	if r.Max != nil {
		max = *r.Max
	}
	return min, max, true
}

// ResolveRange merges a per-point dynamic range with the descriptor's
// gender-specific and general ranges. Each bound is resolved independently:
// dynamic first, then the gender range, then the general range.
func ResolveRange(refMin, refMax *float64, desc Descriptor, gender Gender) ResolvedRange {
	byGender := desc.Ranges.General
	switch gender {
	case Male:
		if desc.Ranges.Male != nil {
			byGender = desc.Ranges.Male
		}
	case Female:
		if desc.Ranges.Female != nil {
			byGender = desc.Ranges.Female
		}
	}

	var out ResolvedRange
	out.Min = firstBound(refMin, byGender, desc.Ranges.General, func(r *RefRange) *float64 { return r.Min })
	out.Max = firstBound(refMax, byGender, desc.Ranges.General, func(r *RefRange) *float64 { return r.Max })
	return out
}

func firstBound(dynamic *float64, primary, fallback *RefRange, side func(*RefRange) *float64) *float64 {
	if dynamic != nil {
		return dynamic
	}
	if primary != nil {
		if b := side(primary); b != nil {
			return b
		}
	}
	if fallback != nil {
		if b := side(fallback); b != nil {
			return b
		}
	}
	return nil
}
