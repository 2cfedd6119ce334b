// Package observability holds the API's telemetry packages:
//
//   - logging: slog construction from LOG_LEVEL/LOG_FORMAT and the
//     request-scoped logger carried on the context
//   - metrics: the newsapi_* Prometheus collectors served on /metrics
//   - tracing: the OpenTelemetry provider and the HTTP server span middleware
package observability
