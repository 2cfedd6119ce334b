package pagination

// Metadata contains pagination metadata included in API responses.
type Metadata struct {
	Total      int64 `json:"total"`       // Total number of items across all pages
	Page       int   `json:"page"`        // Current page number (1-based)
	Limit      int   `json:"limit"`       // Items per page
	TotalPages int   `json:"total_pages"` // ceil(total / limit)
}

// NewMetadata builds metadata for a normalized window and the total reported
// by the backing store.
func NewMetadata(w Window, total int64) Metadata {
	if total < 0 {
		total = 0
	}
	return Metadata{
		Total:      total,
		Page:       w.Page,
		Limit:      w.Limit,
		TotalPages: CalculateTotalPages(total, w.Limit),
	}
}
