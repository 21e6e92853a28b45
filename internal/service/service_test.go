package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"biomarker-insights/internal/alerting"
	"biomarker-insights/internal/config"
	"biomarker-insights/internal/engine"
	"biomarker-insights/internal/storage"
)

type memStore struct {
	records map[string][]storage.MetricRecord
	learned []storage.LearnedMarkerRecord
}

func (m *memStore) UpsertMetricPoint(ctx context.Context, rec storage.MetricRecord) error {
	if m.records == nil {
		m.records = make(map[string][]storage.MetricRecord)
	}
	m.records[rec.MarkerKey] = append(m.records[rec.MarkerKey], rec)
	return nil
}

func (m *memStore) ListPointsByMarker(ctx context.Context, key string) ([]storage.MetricRecord, error) {
	return m.records[key], nil
}

func (m *memStore) ListMarkerKeys(ctx context.Context) ([]string, error) {
	keys := make([]string, 0, len(m.records))
	for k := range m.records {
		keys = append(keys, k)
	}
	return keys, nil
}

func (m *memStore) CountPoints(ctx context.Context) (int64, error) {
	var n int64
	for _, recs := range m.records {
		n += int64(len(recs))
	}
	return n, nil
}

func (m *memStore) DeletePointsBefore(ctx context.Context, olderThan time.Time) error {
	return nil
}

func (m *memStore) UpsertLearnedMarker(ctx context.Context, rec storage.LearnedMarkerRecord) error {
	m.learned = append(m.learned, rec)
	return nil
}

func (m *memStore) ListLearnedMarkers(ctx context.Context) ([]storage.LearnedMarkerRecord, error) {
	return m.learned, nil
}

type memNotifier struct {
	notes []alerting.Notification
}

func (n *memNotifier) Notify(ctx context.Context, note alerting.Notification) error {
	n.notes = append(n.notes, note)
	return nil
}

func testConfig(alerts bool) *config.Config {
	return &config.Config{
		Profile:  config.ProfileConfig{Gender: "male"},
		Sweep:    config.SweepConfig{Interval: time.Hour},
		Alerting: config.AlertingConfig{Enabled: alerts, Channels: []string{"telegram"}},
		Export:   config.ExportConfig{MaxDataPoints: 100},
	}
}

func record(key, date string, value float64, label string) storage.MetricRecord {
	return storage.MetricRecord{
		MarkerKey: key,
		Recorded:  date,
		Value:     decimal.NewFromFloat(value),
		Unit:      "mg/dL",
		Label:     label,
		CreatedAt: time.Now(),
	}
}

func TestAnalyzeComputesTrendFromStoredHistory(t *testing.T) {
	store := &memStore{}
	ctx := context.Background()
	_ = store.UpsertMetricPoint(ctx, record("glucose", "01/01/2024", 100, "Lab PDF"))
	_ = store.UpsertMetricPoint(ctx, record("glucose", "01/02/2024", 90, "Lab PDF"))

	svc := New(testConfig(false), nil, store, store, nil, zerolog.Nop())

	analysis, err := svc.Analyze(ctx, AnalyzeRequest{Label: "Glicemia de Jejum", Value: 90, Date: "01/02/2024", Unit: "mg/dL"})
	if err != nil {
		t.Fatalf("Analyze should succeed: %v", err)
	}

	if analysis.Key != engine.KeyGlucose {
		t.Fatalf("expected glucose key, got %s", analysis.Key)
	}
	if analysis.Result.Trend != engine.TrendDown {
		t.Fatalf("expected downward trend, got %s", analysis.Result.Trend)
	}
	if analysis.Result.TrendPercent != -10 {
		t.Fatalf("expected -10%%, got %f", analysis.Result.TrendPercent)
	}
}

func TestAnalyzeDispatchesCriticalAlert(t *testing.T) {
	store := &memStore{}
	notifier := &memNotifier{}
	svc := New(testConfig(true), nil, store, store, notifier, zerolog.Nop())

	analysis, err := svc.Analyze(context.Background(), AnalyzeRequest{Label: "Glicemia de Jejum", Value: 150, Date: "01/02/2024", Unit: "mg/dL"})
	if err != nil {
		t.Fatalf("Analyze should succeed: %v", err)
	}
	if !analysis.Result.Status.Critical() {
		t.Fatalf("150 mg/dL should classify critical against [70, 99], got %s", analysis.Result.Status)
	}
	if len(notifier.notes) != 1 {
		t.Fatalf("expected one alert, got %d", len(notifier.notes))
	}
	if notifier.notes[0].Kind != alerting.KindCritical {
		t.Fatalf("expected critical kind, got %s", notifier.notes[0].Kind)
	}
}

func TestSweepStalenessFlagsSupersededManualEntry(t *testing.T) {
	store := &memStore{}
	notifier := &memNotifier{}
	ctx := context.Background()
	_ = store.UpsertMetricPoint(ctx, record("weight", "01/03/2024", 82, "Wizard Input"))
	_ = store.UpsertMetricPoint(ctx, record("weight", "15/03/2024", 80, "Lab PDF"))

	svc := New(testConfig(true), nil, store, store, notifier, zerolog.Nop())

	if err := svc.SweepStaleness(ctx, time.Now()); err != nil {
		t.Fatalf("sweep should succeed: %v", err)
	}
	if len(notifier.notes) != 1 {
		t.Fatalf("expected one stale alert, got %d", len(notifier.notes))
	}
	note := notifier.notes[0]
	if note.Kind != alerting.KindStale {
		t.Fatalf("expected stale kind, got %s", note.Kind)
	}
	if note.ExamDate != "15/03/2024" {
		t.Fatalf("expected exam date 15/03/2024, got %s", note.ExamDate)
	}
}

func TestSweepStalenessQuietWithoutFindings(t *testing.T) {
	store := &memStore{}
	notifier := &memNotifier{}
	ctx := context.Background()
	_ = store.UpsertMetricPoint(ctx, record("glucose", "01/01/2024", 95, "Lab PDF"))

	svc := New(testConfig(true), nil, store, store, notifier, zerolog.Nop())

	if err := svc.SweepStaleness(ctx, time.Now()); err != nil {
		t.Fatalf("sweep should succeed: %v", err)
	}
	if len(notifier.notes) != 0 {
		t.Fatalf("expected no alerts, got %d", len(notifier.notes))
	}
}

func TestContextSummary(t *testing.T) {
	store := &memStore{}
	ctx := context.Background()
	_ = store.UpsertMetricPoint(ctx, record("glucose", "01/01/2024", 95, "Glicemia de Jejum"))

	svc := New(testConfig(false), nil, store, store, nil, zerolog.Nop())

	lines, err := svc.ContextSummary(ctx)
	if err != nil {
		t.Fatalf("ContextSummary should succeed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d", len(lines))
	}
}
