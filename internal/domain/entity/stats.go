package entity

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without a time component, encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar date in UTC.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// String returns the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("date: expected a quoted string, got %s", b)
	}
	t, err := time.Parse(dateLayout, string(b[1:len(b)-1]))
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}
	d.Time = t
	return nil
}

// CrawlStats is one row of crawl counters recorded by the crawler.
type CrawlStats struct {
	ID           int32     `json:"id"`
	Date         Date      `json:"date"`
	TotalCrawled int32     `json:"total_crawled"`
	SuccessCount int32     `json:"success_count"`
	FailedCount  int32     `json:"failed_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// SuccessRate returns success/total as a percentage, or 0 when nothing was
// crawled.
func (s CrawlStats) SuccessRate() float64 {
	if s.TotalCrawled <= 0 {
		return 0
	}
	return float64(s.SuccessCount) / float64(s.TotalCrawled) * 100
}

// Daily drops the row identity and creation time.
func (s CrawlStats) Daily() DailyCrawlStats {
	return DailyCrawlStats{
		Date:         s.Date,
		TotalCrawled: s.TotalCrawled,
		SuccessCount: s.SuccessCount,
		FailedCount:  s.FailedCount,
	}
}

// DailyCrawlStats is the per-day view of CrawlStats.
type DailyCrawlStats struct {
	Date         Date  `json:"date"`
	TotalCrawled int32 `json:"total_crawled"`
	SuccessCount int32 `json:"success_count"`
	FailedCount  int32 `json:"failed_count"`
}

// Category is a category with its article counter.
type Category struct {
	ID           int32  `json:"id"`
	Name         string `json:"name"`
	ArticleCount int32  `json:"article_count"`
}

// TimeBucket is one (label, count) pair of a date histogram, in engine order.
type TimeBucket struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// DashboardStats is the aggregated view of the article index.
type DashboardStats struct {
	TotalArticles int64            `json:"total_articles"`
	TodayArticles int64            `json:"today_articles"`
	Categories    map[string]int64 `json:"categories"`
	Publishers    map[string]int64 `json:"publishers"`
	Daily         []TimeBucket     `json:"daily"`
	Hourly        []TimeBucket     `json:"hourly"`
}
