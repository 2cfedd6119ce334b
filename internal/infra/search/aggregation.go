package search

import (
	"news-api/internal/domain/entity"
)

// decodeDashboard reads the named aggregations of a dashboardQuery response.
// Missing sections yield zero values; malformed buckets are skipped one by one.
func decodeDashboard(root node, total int64) entity.DashboardStats {
	stats := entity.DashboardStats{
		TotalArticles: total,
		Categories:    map[string]int64{},
		Publishers:    map[string]int64{},
		Daily:         []entity.TimeBucket{},
		Hourly:        []entity.TimeBucket{},
	}

	aggs, ok := root.field("aggregations")
	if !ok {
		return stats
	}

	if dc, ok := aggs.path("today", "doc_count"); ok {
		if n, ok := dc.count(); ok {
			stats.TodayArticles = n
		}
	}
	if b, ok := aggs.path("categories", "buckets"); ok {
		stats.Categories = termCounts(b)
	}
	if b, ok := aggs.path("publishers", "buckets"); ok {
		stats.Publishers = termCounts(b)
	}
	if b, ok := aggs.path("daily", "buckets"); ok {
		stats.Daily = timeBuckets(b, dailyBucketsMax)
	}
	if b, ok := aggs.path("last_24h", "hourly", "buckets"); ok {
		stats.Hourly = timeBuckets(b, 0)
	}
	return stats
}

// termCounts maps terms buckets {key, doc_count} to label -> count. Empty
// labels are dropped.
func termCounts(buckets node) map[string]int64 {
	out := map[string]int64{}
	items, ok := buckets.array()
	if !ok {
		return out
	}
	for _, b := range items {
		label, count, ok := bucket(b, "key")
		if !ok {
			continue
		}
		out[label] += count
	}
	return out
}

// timeBuckets maps histogram buckets {key_as_string, doc_count} in engine
// order. limit <= 0 keeps every bucket.
func timeBuckets(buckets node, limit int) []entity.TimeBucket {
	out := []entity.TimeBucket{}
	items, ok := buckets.array()
	if !ok {
		return out
	}
	for _, b := range items {
		if limit > 0 && len(out) == limit {
			break
		}
		label, count, ok := bucket(b, "key_as_string")
		if !ok {
			continue
		}
		out = append(out, entity.TimeBucket{Label: label, Count: count})
	}
	return out
}

func bucket(b node, labelKey string) (string, int64, bool) {
	lv, ok := b.field(labelKey)
	if !ok {
		return "", 0, false
	}
	label, ok := lv.str()
	if !ok || label == "" {
		return "", 0, false
	}
	cv, ok := b.field("doc_count")
	if !ok {
		return "", 0, false
	}
	count, ok := cv.count()
	if !ok {
		return "", 0, false
	}
	return label, count, true
}
