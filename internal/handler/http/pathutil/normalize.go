package pathutil

import "strings"

const (
	articlePrefix = "/api/news/"
	swaggerPrefix = "/swagger/"
)

// NormalizePath maps a request path onto its route template so metric and
// span labels stay bounded. Document ids are arbitrary engine strings, so
// every /api/news/<id> collapses to /api/news/:id. Query strings and a
// trailing slash are dropped.
//
//	NormalizePath("/api/news/abc-123")      // "/api/news/:id"
//	NormalizePath("/api/news/search?q=go")  // "/api/news/search"
//	NormalizePath("/swagger/index.html")    // "/swagger/*"
func NormalizePath(path string) string {
	path, _, _ = strings.Cut(path, "?")
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	switch {
	case strings.HasPrefix(path, articlePrefix):
		rest := path[len(articlePrefix):]
		if rest == "search" || strings.Contains(rest, "/") {
			return path
		}
		return "/api/news/:id"
	case strings.HasPrefix(path, swaggerPrefix):
		return "/swagger/*"
	}
	return path
}
