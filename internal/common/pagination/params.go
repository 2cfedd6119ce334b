package pagination

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Params is the raw page/limit pair taken from a query string, before
// clamping.
type Params struct {
	Page  int
	Limit int
}

// ParseQueryParams fills Params from ?page= and ?limit=. Absent or empty
// values fall back to cfg's defaults. Values that are not integers are an
// error; integers out of range are left for Window to clamp.
func ParseQueryParams(r *http.Request, cfg Config) (Params, error) {
	cfg = cfg.sanitized()
	q := r.URL.Query()

	page, err := intParam(q.Get("page"), "page", cfg.DefaultPage)
	if err != nil {
		return Params{}, err
	}
	limit, err := intParam(q.Get("limit"), "limit", cfg.DefaultLimit)
	if err != nil {
		return Params{}, err
	}
	return Params{Page: page, Limit: limit}, nil
}

func intParam(raw, name string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid query parameter: %s must be an integer", name)
	}
	return n, nil
}

// Window clamps p against cfg.
func (p Params) Window(cfg Config) Window {
	return cfg.Normalize(p.Page, p.Limit)
}
