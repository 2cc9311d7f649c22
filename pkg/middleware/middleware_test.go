package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/morphic-dev/morphic/pkg/morph"
)

// resetMetrics installs metrics backed by a fresh registry so each test
// observes only its own samples.
func resetMetrics(t *testing.T) *metrics {
	t.Helper()
	globalMetricsMu.Lock()
	globalMetrics = initMetrics(MetricsConfig{
		Namespace: "morphic",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.NewRegistry(),
	})
	m := globalMetrics
	globalMetricsMu.Unlock()
	t.Cleanup(func() {
		globalMetricsMu.Lock()
		globalMetrics = nil
		globalMetricsMu.Unlock()
	})
	return m
}

func TestPrometheusMiddleware(t *testing.T) {
	m := resetMetrics(t)

	h := Prometheus()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/brew", nil))

	if got := testutil.ToFloat64(m.requestsTotal.WithLabelValues("/brew", "418")); got != 1 {
		t.Errorf("requests_total{/brew,418} = %v, want 1", got)
	}
}

func TestPrometheusDefaultsToOK(t *testing.T) {
	m := resetMetrics(t)

	h := Prometheus()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "hi")
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	if got := testutil.ToFloat64(m.requestsTotal.WithLabelValues("/", "200")); got != 1 {
		t.Errorf("requests_total{/,200} = %v, want 1", got)
	}
}

func TestRecordEvent(t *testing.T) {
	m := resetMetrics(t)

	RecordEvent("click", 5*time.Millisecond, nil)
	RecordEvent("click", 5*time.Millisecond, errors.New("boom"))

	if got := testutil.ToFloat64(m.eventsTotal.WithLabelValues("click", "success")); got != 1 {
		t.Errorf("events_total{click,success} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.eventsTotal.WithLabelValues("click", "error")); got != 1 {
		t.Errorf("events_total{click,error} = %v, want 1", got)
	}
}

func TestRecordMorph(t *testing.T) {
	m := resetMetrics(t)

	RecordMorph(morph.Stats{Inserts: 2, Moves: 1, TextPatches: 3})

	if got := testutil.ToFloat64(m.morphMutations.WithLabelValues("insert")); got != 2 {
		t.Errorf("mutations{insert} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.morphMutations.WithLabelValues("move")); got != 1 {
		t.Errorf("mutations{move} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.morphMutations.WithLabelValues("text")); got != 3 {
		t.Errorf("mutations{text} = %v, want 3", got)
	}
	if got := testutil.ToFloat64(m.morphMutations.WithLabelValues("remove")); got != 0 {
		t.Errorf("mutations{remove} = %v, want 0", got)
	}
}

func TestSessionGauge(t *testing.T) {
	m := resetMetrics(t)

	RecordSessionCreate()
	RecordSessionCreate()
	RecordSessionDestroy()
	RecordPatches(4)

	if got := testutil.ToFloat64(m.activeSessions); got != 1 {
		t.Errorf("active_sessions = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.patchesSent); got != 4 {
		t.Errorf("patches_sent_total = %v, want 4", got)
	}
}

func TestRecordersWithoutInit(t *testing.T) {
	globalMetricsMu.Lock()
	globalMetrics = nil
	globalMetricsMu.Unlock()

	// All recorders must be safe before Prometheus() ever runs.
	RecordEvent("click", time.Millisecond, nil)
	RecordPatches(1)
	RecordMorph(morph.Stats{Inserts: 1})
	RecordSessionCreate()
	RecordSessionDestroy()
	RecordWebSocketError("read")
}

func TestOpenTelemetryPassthrough(t *testing.T) {
	h := OpenTelemetry()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		io.WriteString(w, "traced")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/page", nil))

	if rec.Code != http.StatusAccepted {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusAccepted)
	}
	if got := rec.Body.String(); got != "traced" {
		t.Errorf("body = %q, want %q", got, "traced")
	}
}

func TestOpenTelemetryFilter(t *testing.T) {
	served := false
	h := OpenTelemetry(WithRequestFilter(func(r *http.Request) bool {
		return r.URL.Path != "/health"
	}))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served = true
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", nil))
	if !served {
		t.Error("filtered request was not served")
	}
}

func TestTraceEvent(t *testing.T) {
	ctx, finish := TraceEvent(context.Background(), "input", "session-1")
	if ctx == nil {
		t.Fatal("TraceEvent returned nil context")
	}
	finish(3, nil)

	_, finish = TraceEvent(context.Background(), "input", "session-1")
	finish(0, errors.New("dispatch failed"))
}
