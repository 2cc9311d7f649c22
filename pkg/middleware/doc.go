// Package middleware provides production-grade middleware for morphic
// applications.
//
// This package includes:
//   - OpenTelemetry distributed tracing middleware
//   - Prometheus metrics middleware
//
// # OpenTelemetry Middleware
//
// The OpenTelemetry middleware traces every HTTP request, and TraceEvent
// wraps component event dispatch so spans carry event type, session ID,
// and patch counts.
//
//	r := chi.NewRouter()
//	r.Use(middleware.OpenTelemetry(
//	    middleware.WithTracerName("my-app"),
//	    middleware.WithRequestFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
//
// # Prometheus Metrics
//
// The Prometheus middleware collects metrics about your application:
//   - morphic_http_requests_total: Requests by path and code
//   - morphic_events_total: Component events by type and status
//   - morphic_event_duration_seconds: Event processing duration histogram
//   - morphic_patches_sent_total: Patches sent to clients
//   - morphic_morph_mutations_total: Reconciler mutations by kind
//   - morphic_active_sessions: Current WebSocket session count
//
//	r.Use(middleware.Prometheus())
//	r.Handle("/metrics", promhttp.Handler())
package middleware
