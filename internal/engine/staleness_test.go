package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckStaleFlagsSupersededManualEntry(t *testing.T) {
	manual := MetricPoint{Date: "01/03/2024", Value: 450, Unit: "ng/dL", Label: "Wizard Input"}
	exam := MetricPoint{Date: "15/03/2024", Value: 420, Unit: "ng/dL", Label: "Lab PDF"}
	history := []MetricPoint{manual, exam}

	res := CheckStale(manual, history)

	require.NotNil(t, res)
	assert.Equal(t, "15/03/2024", res.ExamDate)
	assert.Equal(t, 420.0, res.ExamValue)
	assert.Equal(t, "ng/dL", res.ExamUnit)
}

func TestCheckStaleNeverFlagsOlderManualEntries(t *testing.T) {
	older := MetricPoint{Date: "01/01/2024", Value: 470, Label: "Manual entry"}
	latest := MetricPoint{Date: "01/03/2024", Value: 450, Label: "Wizard Input"}
	exam := MetricPoint{Date: "15/03/2024", Value: 420, Label: "Lab PDF"}
	history := []MetricPoint{older, latest, exam}

	// Even though a later exam exists, only the latest manual point can be
	// stale.
	assert.Nil(t, CheckStale(older, history))
	assert.NotNil(t, CheckStale(latest, history))
}

func TestCheckStaleRequiresLaterExam(t *testing.T) {
	manual := MetricPoint{Date: "20/03/2024", Value: 450, Label: "user input"}
	exam := MetricPoint{Date: "15/03/2024", Value: 420, Label: "Lab PDF"}

	assert.Nil(t, CheckStale(manual, []MetricPoint{manual, exam}))

	// Same date is not strictly later.
	sameDay := MetricPoint{Date: "20/03/2024", Value: 420, Label: "Lab PDF"}
	assert.Nil(t, CheckStale(manual, []MetricPoint{manual, sameDay}))
}

func TestCheckStaleRequiresBothGroups(t *testing.T) {
	manual := MetricPoint{Date: "01/03/2024", Value: 450, Label: "profile"}
	exam := MetricPoint{Date: "15/03/2024", Value: 420, Label: "Lab PDF"}

	assert.Nil(t, CheckStale(manual, []MetricPoint{manual}))
	assert.Nil(t, CheckStale(exam, []MetricPoint{exam}))
}

func TestCheckStaleCreatedAtBreaksDateTies(t *testing.T) {
	earlier := MetricPoint{Date: "01/03/2024", Value: 440, Label: "manual", CreatedAt: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)}
	later := MetricPoint{Date: "01/03/2024", Value: 450, Label: "manual", CreatedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	exam := MetricPoint{Date: "15/03/2024", Value: 420, Label: "Lab PDF"}
	history := []MetricPoint{earlier, later, exam}

	// The later insertion wins the tie, so only it is considered current.
	assert.Nil(t, CheckStale(earlier, history))
	assert.NotNil(t, CheckStale(later, history))
}

func TestManualLabelDetection(t *testing.T) {
	for _, label := range []string{"Manual", "wizard step 2", "Profile", "USER", "input form"} {
		assert.True(t, isManualLabel(label), "label %q", label)
	}
	for _, label := range []string{"Lab PDF", "Exame de sangue", "upload"} {
		assert.False(t, isManualLabel(label), "label %q", label)
	}
}
