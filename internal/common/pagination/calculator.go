package pagination

import "math"

// Window is a normalized page request: a 1-based page, a bounded page size and
// the number of items to skip. The engine "size" is always Limit.
type Window struct {
	Page   int
	Limit  int
	Offset int
}

// Normalize bounds a page request against c.
//
//	page'  = clamp(page, 1, MaxInt/limit')
//	limit' = clamp(limit, 1, c.MaxLimit)
//	offset = (page' - 1) * limit'
//
// Callers apply their own defaults for missing parameters; Normalize never
// fails. The page ceiling only keeps the offset from overflowing; windows
// the engine cannot serve are rejected with WithinResultWindow.
func (c Config) Normalize(page, limit int) Window {
	c = c.sanitized()
	limit = clamp(limit, 1, c.MaxLimit)
	page = clamp(page, 1, math.MaxInt/limit)
	return Window{
		Page:   page,
		Limit:  limit,
		Offset: CalculateOffset(page, limit),
	}
}

// CalculateOffset returns (page - 1) * limit. Page numbers are 1-based.
//
// Examples:
//   - Page 1, Limit 20 -> Offset 0
//   - Page 2, Limit 20 -> Offset 20
//   - Page 3, Limit 10 -> Offset 20
func CalculateOffset(page, limit int) int {
	return (page - 1) * limit
}

// CalculateTotalPages returns ceil(total / limit). An empty result has zero
// pages; a non-positive limit also yields zero.
//
// Examples:
//   - Total 0, Limit 20 -> 0 pages
//   - Total 20, Limit 20 -> 1 page
//   - Total 21, Limit 20 -> 2 pages
//   - Total 45, Limit 20 -> 3 pages
func CalculateTotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// MaxResultWindow is the deepest from+size an OpenSearch index serves with
// default settings (index.max_result_window).
const MaxResultWindow = 10000

// WithinResultWindow reports whether the engine can serve w.
func (w Window) WithinResultWindow() bool {
	return w.Offset <= MaxResultWindow-w.Limit
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
