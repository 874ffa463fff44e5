package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordRequest(t *testing.T) {
	tests := []struct {
		name       string
		tool       string
		duration   float64
		success    bool
		wantStatus string
	}{
		{
			name:       "successful request",
			tool:       "test_tool",
			duration:   0.5,
			success:    true,
			wantStatus: "success",
		},
		{
			name:       "failed request",
			tool:       "test_tool",
			duration:   1.0,
			success:    false,
			wantStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordRequest(tt.tool, tt.duration, tt.success)

			counter, err := RequestsTotal.GetMetricWithLabelValues(tt.tool, tt.wantStatus)
			if err != nil {
				t.Fatalf("failed to get metric: %v", err)
			}

			var m dto.Metric
			if err := counter.Write(&m); err != nil {
				t.Fatalf("failed to write metric: %v", err)
			}

			if m.Counter.GetValue() < 1 {
				t.Error("expected counter to be incremented")
			}
		})
	}
}

func TestRecordAPIRequest(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		status    string
	}{
		{"successful query", "prop=extracts|revisions", "success"},
		{"search error", "list=search", "api_error"},
		{"http failure", "prop=info|pageprops", "http_500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordAPIRequest(tt.operation, tt.status, 0.1)

			counter, err := APIRequestsTotal.GetMetricWithLabelValues(tt.operation, tt.status)
			if err != nil {
				t.Fatalf("failed to get metric: %v", err)
			}

			var m dto.Metric
			if err := counter.Write(&m); err != nil {
				t.Fatalf("failed to write metric: %v", err)
			}

			if m.Counter.GetValue() < 1 {
				t.Error("expected counter to be incremented")
			}
		})
	}
}

func TestRecordFieldAccess(t *testing.T) {
	initialFetch := getCounterValue(t, fieldCounter(t, "content", "fetch"))
	initialCache := getCounterValue(t, fieldCounter(t, "content", "cache"))

	RecordFieldAccess("content", false)
	if got := getCounterValue(t, fieldCounter(t, "content", "fetch")); got != initialFetch+1 {
		t.Errorf("fetch counter = %v, want %v", got, initialFetch+1)
	}

	RecordFieldAccess("content", true)
	if got := getCounterValue(t, fieldCounter(t, "content", "cache")); got != initialCache+1 {
		t.Errorf("cache counter = %v, want %v", got, initialCache+1)
	}
}

func TestMetricsRegistered(t *testing.T) {
	metrics := []prometheus.Collector{
		RequestsTotal,
		RequestDuration,
		RequestInFlight,
		PanicsRecovered,
		APIRequestsTotal,
		APIRequestDuration,
		FieldLoads,
	}

	for i, m := range metrics {
		if m == nil {
			t.Errorf("metric at index %d is nil", i)
		}
	}
}

func TestNamespace(t *testing.T) {
	if Namespace != "wikipedia_mcp" {
		t.Errorf("expected namespace 'wikipedia_mcp', got '%s'", Namespace)
	}
}

func fieldCounter(t *testing.T, field, source string) prometheus.Counter {
	t.Helper()
	counter, err := FieldLoads.GetMetricWithLabelValues(field, source)
	if err != nil {
		t.Fatalf("failed to get metric: %v", err)
	}
	return counter
}

// Helper to get counter value
func getCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	return m.Counter.GetValue()
}
