// Package logging configures log/slog for the news API and carries the
// request-scoped logger through context.
//
// The HTTP logging middleware stores a logger tagged with request_id via
// WithLogger; handlers and use cases retrieve it with FromContext:
//
//	logging.FromContext(ctx).Warn("search engine unavailable", slog.String("op", op))
package logging
