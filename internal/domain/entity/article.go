// Package entity defines the read-only domain values served by the news API:
// articles projected from the search index, crawl counters and category counts
// from the relational store, and the aggregated dashboard views.
package entity

import "time"

// Article is a news article as stored in the search index.
// Title is the only required field; absent optional fields are omitted when
// encoded.
type Article struct {
	ID          *string    `json:"id,omitempty"`
	Title       string     `json:"title"`
	Content     *string    `json:"content,omitempty"`
	Summary     *string    `json:"summary,omitempty"`
	URL         *string    `json:"url,omitempty"`
	Source      *string    `json:"source,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Author      *string    `json:"author,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CrawledAt   *time.Time `json:"crawled_at,omitempty"`
}

// ArticlePage is one page of articles together with the total hit count
// reported by the engine.
type ArticlePage struct {
	Articles []Article
	Total    int64
	Page     int
	Limit    int
}
