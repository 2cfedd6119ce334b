package search

import (
	"encoding/json"
	"strings"

	"news-api/internal/common/pagination"
)

// Fields searched by keyword queries, in boost order.
var searchFields = []string{"title^3", "content", "category"}

// Aggregation settings for the dashboard query.
const (
	categoryField   = "category.keyword"
	publisherField  = "source.keyword"
	termsBucketSize = 50
	dailyBucketsMax = 30
)

type query map[string]any

// pagedQuery asks for an exact hits.total so total_pages is right past
// 10 000 matches.
func pagedQuery(w pagination.Window, q query) query {
	return query{
		"from":             w.Offset,
		"size":             w.Limit,
		"track_total_hits": true,
		"query":            q,
		"sort": []any{
			query{"published_at": query{"order": "desc"}},
		},
	}
}

// listQuery matches every document, newest first.
func listQuery(w pagination.Window) query {
	return pagedQuery(w, query{"match_all": query{}})
}

// searchQuery runs a fuzzy best_fields match of keyword over title, content
// and category. keyword must already be trimmed and non-empty.
func searchQuery(keyword string, w pagination.Window) query {
	return pagedQuery(w, query{
		"multi_match": query{
			"query":     keyword,
			"fields":    searchFields,
			"type":      "best_fields",
			"fuzziness": "AUTO",
		},
	})
}

// dashboardQuery asks for hit totals and the named aggregations decoded by
// decodeDashboard.
func dashboardQuery() query {
	return query{
		"size":             0,
		"track_total_hits": true,
		"aggs": query{
			"today": query{
				"filter": query{"range": query{"published_at": query{"gte": "now/d"}}},
			},
			"categories": query{
				"terms": query{"field": categoryField, "size": termsBucketSize},
			},
			"publishers": query{
				"terms": query{"field": publisherField, "size": termsBucketSize},
			},
			"daily": query{
				"date_histogram": query{
					"field":             "published_at",
					"calendar_interval": "day",
					"format":            "yyyy-MM-dd",
					"order":             query{"_key": "desc"},
				},
			},
			"last_24h": query{
				"filter": query{"range": query{"published_at": query{"gte": "now-24h"}}},
				"aggs": query{
					"hourly": query{
						"date_histogram": query{
							"field":          "published_at",
							"fixed_interval": "1h",
							"format":         "yyyy-MM-dd'T'HH:00",
						},
					},
				},
			},
		},
	}
}

func normalizeKeyword(q string) (string, bool) {
	q = strings.TrimSpace(q)
	return q, q != ""
}

func (q query) encode() ([]byte, error) {
	return json.Marshal(q)
}
