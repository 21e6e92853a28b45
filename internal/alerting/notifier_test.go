package alerting

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

func TestTelegramNotifierSuccess(t *testing.T) {
	received := make(map[string]string)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "sendMessage") {
			t.Fatalf("path should contain sendMessage, got %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}))
	defer srv.Close()

	notifier := NewTelegramNotifier("token", "chat", srv.URL, time.Second, testLogger())
	note := Notification{
		Kind:        KindCritical,
		MarkerKey:   "glucose",
		MarkerLabel: "Fasting Glucose",
		Value:       decimal.NewFromInt(132),
		Unit:        "mg/dL",
		Recorded:    "15/03/2024",
		Status:      "critical_high",
		Message:     "CRITICAL: exceeded the reference range (70–99)",
	}

	if err := notifier.Notify(context.Background(), note); err != nil {
		t.Fatalf("Notify should succeed: %v", err)
	}

	if received["chat_id"] != "chat" {
		t.Fatalf("unexpected chat_id: %#v", received)
	}
	if !strings.Contains(received["text"], "Fasting Glucose") {
		t.Fatalf("text should carry the marker label, got %q", received["text"])
	}
	if !strings.Contains(received["text"], "132 mg/dL") {
		t.Fatalf("text should carry the value, got %q", received["text"])
	}
}

func TestTelegramNotifierStaleMessage(t *testing.T) {
	var received map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&received)
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}))
	defer srv.Close()

	notifier := NewTelegramNotifier("token", "chat", srv.URL, time.Second, testLogger())
	note := Notification{
		Kind:        KindStale,
		MarkerKey:   "weight",
		MarkerLabel: "Body Weight",
		Value:       decimal.NewFromInt(82),
		Unit:        "kg",
		Recorded:    "01/03/2024",
		ExamDate:    "15/03/2024",
		ExamValue:   decimal.NewFromInt(80),
	}

	if err := notifier.Notify(context.Background(), note); err != nil {
		t.Fatalf("Notify should succeed: %v", err)
	}
	if !strings.Contains(received["text"], "[Marker Stale]") {
		t.Fatalf("stale notifications should use the stale header, got %q", received["text"])
	}
	if !strings.Contains(received["text"], "15/03/2024") {
		t.Fatalf("stale notifications should carry the newer exam date, got %q", received["text"])
	}
}

func TestTelegramNotifierError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": false})
	}))
	defer srv.Close()

	notifier := NewTelegramNotifier("token", "chat", srv.URL, time.Second, testLogger())
	note := Notification{Kind: KindCritical, MarkerKey: "glucose", Value: decimal.NewFromInt(1)}

	if err := notifier.Notify(context.Background(), note); err == nil {
		t.Fatal("ok=false should be reported as an error")
	}
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}
