package engine

import "time"

// Gender selects which reference bounds apply. Only the two values below
// are accepted; anything else falls through to the general range.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// MetricPoint is one observed value in a marker's history. Points are owned
// by the caller and never mutated by the engine.
type MetricPoint struct {
	Date      string
	Value     float64
	Unit      string
	Label     string
	RefMin    *float64
	RefMax    *float64
	CreatedAt time.Time
}

// RefRange is an optional [min, max] pair. Either side may be absent.
type RefRange struct {
	Min *float64
	Max *float64
}

// GenderRanges holds the up-to-three reference ranges a descriptor may carry.
type GenderRanges struct {
	Male    *RefRange
	Female  *RefRange
	General *RefRange
}

// Source is a literature or registry reference backing a descriptor.
type Source struct {
	Title string
	URL   string
}

// Origin tags how a descriptor was resolved.
type Origin int

const (
	OriginCurated Origin = iota
	OriginLearned
	OriginGeneric
)

// Descriptor is the knowledge-base record for one marker.
type Descriptor struct {
	ID         Key
	Label      string
	Unit       string
	Definition string
	Ranges     GenderRanges
	RisksHigh  []string
	RisksLow   []string
	Tips       []string
	Sources    []Source
	Origin     Origin
	IsGeneric  bool
	IsLearned  bool
}

// LearnedMarker is an externally-sourced descriptor supplied by the caller.
// The engine never fetches these itself.
type LearnedMarker struct {
	Key       Key
	Label     string
	Unit      string
	MaleMin   *float64
	MaleMax   *float64
	FemaleMin *float64
	FemaleMax *float64
	SourceURL string
}

// Status is the severity band a value falls into relative to its range.
type Status string

const (
	StatusUnknown        Status = "unknown"
	StatusCriticalLow    Status = "critical_low"
	StatusLow            Status = "low"
	StatusBorderlineLow  Status = "borderline_low"
	StatusNormal         Status = "normal"
	StatusBorderlineHigh Status = "borderline_high"
	StatusHigh           Status = "high"
	StatusCriticalHigh   Status = "critical_high"
)

// Critical reports whether the status is outside the reference range.
func (s Status) Critical() bool {
	return s == StatusCriticalLow || s == StatusCriticalHigh
}

// RiskColor is the semantic display color for a status.
type RiskColor string

const (
	ColorRed     RiskColor = "red"
	ColorOrange  RiskColor = "orange"
	ColorYellow  RiskColor = "yellow"
	ColorEmerald RiskColor = "emerald"
	ColorGray    RiskColor = "gray"
)

// Trend is the direction of change against the previous observation.
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendStable  Trend = "stable"
	TrendUnknown Trend = "unknown"
)

// AnalysisResult is the engine output consumed by tooltips, detail panels,
// and the AI context builder.
type AnalysisResult struct {
	Status       Status
	Trend        Trend
	TrendPercent float64
	Delta        float64
	Message      string
	RiskColor    RiskColor
	ActiveRange  *ResolvedRange
}

// StalenessResult flags a manually-entered value superseded by newer lab data.
type StalenessResult struct {
	ExamDate  string
	ExamValue float64
	ExamUnit  string
}

func ptr(v float64) *float64 { return &v }
