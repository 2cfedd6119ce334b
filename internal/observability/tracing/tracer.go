package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName identifies spans created by this service.
const InstrumentationName = "news-api"

// GetTracer returns the service tracer from the current global provider.
func GetTracer() trace.Tracer {
	return otel.GetTracerProvider().Tracer(InstrumentationName)
}
