package engine

import (
	"sort"
	"strings"
)

// Label fragments identifying manually-entered points, as opposed to values
// extracted from uploaded lab documents.
var manualLabelHints = []string{"manual", "wizard", "profile", "user", "input"}

func isManualLabel(label string) bool {
	needle := strings.ToLower(label)
	for _, hint := range manualLabelHints {
		if strings.Contains(needle, hint) {
			return true
		}
	}
	return false
}

// CheckStale reports whether the displayed point is a manually-entered value
// that newer lab data has superseded. It returns nil unless the displayed
// point is the latest manual entry and a strictly later exam point exists.
func CheckStale(displayed MetricPoint, history []MetricPoint) *StalenessResult {
	var manual, exam []MetricPoint
	for _, p := range history {
		if isManualLabel(p.Label) {
			manual = append(manual, p)
		} else {
			exam = append(exam, p)
		}
	}
	if len(manual) == 0 || len(exam) == 0 {
		return nil
	}

	sortByDateDesc(manual)
	sortByDateDesc(exam)

	latestManual := manual[0]
	if displayed.Date != latestManual.Date || displayed.Value != latestManual.Value {
		return nil
	}

	latestExam := exam[0]
	if !ParseDate(latestExam.Date).After(ParseDate(latestManual.Date)) {
		return nil
	}

	return &StalenessResult{
		ExamDate:  latestExam.Date,
		ExamValue: latestExam.Value,
		ExamUnit:  latestExam.Unit,
	}
}

// LatestManualPoint returns the most recent manually-entered point, the one
// staleness applies to.
func LatestManualPoint(history []MetricPoint) (MetricPoint, bool) {
	var manual []MetricPoint
	for _, p := range history {
		if isManualLabel(p.Label) {
			manual = append(manual, p)
		}
	}
	if len(manual) == 0 {
		return MetricPoint{}, false
	}
	sortByDateDesc(manual)
	return manual[0], true
}

// LatestPoint returns the chronologically newest point of a history.
func LatestPoint(history []MetricPoint) (MetricPoint, bool) {
	if len(history) == 0 {
		return MetricPoint{}, false
	}
	all := make([]MetricPoint, len(history))
	copy(all, history)
	sortByDateDesc(all)
	return all[0], true
}

// sortByDateDesc orders newest first, breaking date ties on the insertion
// timestamp.
func sortByDateDesc(points []MetricPoint) {
	sort.SliceStable(points, func(i, j int) bool {
		di, dj := ParseDate(points[i].Date), ParseDate(points[j].Date)
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return points[i].CreatedAt.After(points[j].CreatedAt)
	})
}
