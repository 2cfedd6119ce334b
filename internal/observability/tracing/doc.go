// Package tracing wires OpenTelemetry into the news API.
//
// InitProvider installs the SDK provider at start-up. Middleware opens a
// server span per HTTP request and echoes the trace id in the X-Trace-Id
// response header. The search gateway opens one child span per engine call:
//
//	ctx, span := tracing.GetTracer().Start(ctx, "search.ListArticles")
//	defer span.End()
package tracing
