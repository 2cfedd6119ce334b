package search

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-api/internal/domain/entity"
)

func mustNode(t *testing.T, body string) node {
	t.Helper()
	n, ok := parseNode([]byte(body))
	require.True(t, ok)
	return n
}

func TestDecodeDashboard_MissingSections(t *testing.T) {
	stats := decodeDashboard(mustNode(t, `{"hits":{"total":3,"hits":[]}}`), 3)

	assert.Equal(t, int64(3), stats.TotalArticles)
	assert.Zero(t, stats.TodayArticles)
	assert.Empty(t, stats.Categories)
	assert.Empty(t, stats.Publishers)
	assert.NotNil(t, stats.Daily)
	assert.Empty(t, stats.Daily)
	assert.NotNil(t, stats.Hourly)
}

func TestDecodeDashboard_SkipsMalformedBuckets(t *testing.T) {
	root := mustNode(t, `{"aggregations":{
		"today":{"doc_count":"many"},
		"categories":{"buckets":[
			{"key":"economy","doc_count":4},
			{"key":"","doc_count":9},
			{"doc_count":2},
			{"key":12,"doc_count":2},
			{"key":"world","doc_count":-3},
			{"key":"culture","doc_count":1.5},
			{"key":"tech","doc_count":6}
		]},
		"publishers":{"buckets":"oops"},
		"daily":{"buckets":[
			{"key_as_string":"2024-05-02","doc_count":5},
			{"key":1714521600000,"doc_count":4},
			{"key_as_string":"2024-04-30","doc_count":3}
		]},
		"last_24h":{"hourly":{"buckets":[{"key_as_string":"2024-05-02T00:00","doc_count":0}]}}
	}}`)

	stats := decodeDashboard(root, 10)

	assert.Zero(t, stats.TodayArticles)
	assert.Equal(t, map[string]int64{"economy": 4, "tech": 6}, stats.Categories)
	assert.Empty(t, stats.Publishers)
	assert.Equal(t, []entity.TimeBucket{
		{Label: "2024-05-02", Count: 5},
		{Label: "2024-04-30", Count: 3},
	}, stats.Daily)
	assert.Equal(t, []entity.TimeBucket{{Label: "2024-05-02T00:00", Count: 0}}, stats.Hourly)
}

func TestTimeBuckets_Limit(t *testing.T) {
	root := mustNode(t, `[
		{"key_as_string":"a","doc_count":1},
		{"key_as_string":"b","doc_count":2},
		{"key_as_string":"c","doc_count":3}
	]`)

	assert.Len(t, timeBuckets(root, 2), 2)
	assert.Len(t, timeBuckets(root, 0), 3)
}

func TestDecodeDashboard_DailyKeepsFirstThirty(t *testing.T) {
	daily := make([]string, 35)
	hourly := make([]string, 35)
	for i := range daily {
		daily[i] = fmt.Sprintf(`{"key_as_string":"day-%02d","doc_count":%d}`, i, i)
		hourly[i] = fmt.Sprintf(`{"key_as_string":"hour-%02d","doc_count":%d}`, i, i)
	}
	root := mustNode(t, `{"aggregations":{
		"daily":{"buckets":[`+strings.Join(daily, ",")+`]},
		"last_24h":{"hourly":{"buckets":[`+strings.Join(hourly, ",")+`]}}
	}}`)

	stats := decodeDashboard(root, 35)

	require.Len(t, stats.Daily, dailyBucketsMax)
	assert.Equal(t, "day-00", stats.Daily[0].Label)
	assert.Equal(t, entity.TimeBucket{Label: "day-29", Count: 29}, stats.Daily[29])
	assert.Len(t, stats.Hourly, 35, "hourly buckets are returned as delivered")
}
