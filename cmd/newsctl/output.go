package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"news-api/internal/common/pagination"
	"news-api/internal/domain/entity"
)

// PageOutput is the JSON form of a page of articles.
type PageOutput struct {
	Articles   []entity.Article `json:"articles"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
}

// PingOutput is the JSON form of the ping command.
type PingOutput struct {
	OpenSearch string `json:"opensearch"`
}

type printer struct {
	out    io.Writer
	format string
}

func (p printer) json(v any) error {
	encoder := json.NewEncoder(p.out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func (p printer) articlePage(page entity.ArticlePage) error {
	meta := pagination.NewMetadata(pagination.Window{Page: page.Page, Limit: page.Limit}, page.Total)
	if p.format == outputJSON {
		articles := page.Articles
		if articles == nil {
			articles = []entity.Article{}
		}
		return p.json(PageOutput{
			Articles:   articles,
			Total:      meta.Total,
			Page:       meta.Page,
			Limit:      meta.Limit,
			TotalPages: meta.TotalPages,
		})
	}

	tw := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPUBLISHED\tSOURCE\tCATEGORY\tTITLE")
	for _, a := range page.Articles {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			deref(a.ID), formatTime(a.PublishedAt), deref(a.Source), deref(a.Category), truncate(a.Title, 80))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(p.out, "\npage %d/%d, %d articles total\n", meta.Page, meta.TotalPages, meta.Total)
	return err
}

func (p printer) article(a entity.Article) error {
	if p.format == outputJSON {
		return p.json(a)
	}

	tw := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	rows := [][2]string{
		{"ID", deref(a.ID)},
		{"Title", a.Title},
		{"Source", deref(a.Source)},
		{"Category", deref(a.Category)},
		{"Author", deref(a.Author)},
		{"URL", deref(a.URL)},
		{"Published", formatTime(a.PublishedAt)},
		{"Crawled", formatTime(a.CrawledAt)},
		{"Summary", deref(a.Summary)},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s:\t%s\n", r[0], r[1])
	}
	return tw.Flush()
}

func (p printer) dashboard(d entity.DashboardStats) error {
	if p.format == outputJSON {
		return p.json(d)
	}

	tw := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Total articles:\t%d\n", d.TotalArticles)
	fmt.Fprintf(tw, "Today:\t%d\n", d.TodayArticles)
	writeCounts(tw, "Categories", d.Categories)
	writeCounts(tw, "Publishers", d.Publishers)
	writeBuckets(tw, "Daily", d.Daily)
	writeBuckets(tw, "Hourly", d.Hourly)
	return tw.Flush()
}

func (p printer) ping(up bool) error {
	status := "connected"
	if !up {
		status = "disconnected"
	}
	if p.format == outputJSON {
		return p.json(PingOutput{OpenSearch: status})
	}
	_, err := fmt.Fprintf(p.out, "opensearch: %s\n", status)
	return err
}

// writeCounts prints m largest first, ties broken by name.
func writeCounts(w io.Writer, title string, m map[string]int64) {
	fmt.Fprintf(w, "\n%s:\t\n", title)
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if m[keys[i]] != m[keys[j]] {
			return m[keys[i]] > m[keys[j]]
		}
		return keys[i] < keys[j]
	})
	for _, k := range keys {
		fmt.Fprintf(w, "  %s\t%d\n", k, m[k])
	}
}

func writeBuckets(w io.Writer, title string, buckets []entity.TimeBucket) {
	fmt.Fprintf(w, "\n%s:\t\n", title)
	for _, b := range buckets {
		fmt.Fprintf(w, "  %s\t%d\n", b.Label, b.Count)
	}
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format("2006-01-02 15:04")
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
