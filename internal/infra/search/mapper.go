package search

import (
	"time"

	"news-api/internal/domain/entity"
)

// hitsEnvelope is the decoded part of a search response the mapper relies on.
type hitsEnvelope struct {
	total int64
	hits  []node
}

// decodeEnvelope extracts hits.total and hits.hits. Both are required.
// hits.total may be an object with a numeric "value" or a bare number.
func decodeEnvelope(op string, body []byte) (node, hitsEnvelope, error) {
	root, ok := parseNode(body)
	if !ok || !root.isObject() {
		return node{}, hitsEnvelope{}, parseError(op, "response is not a JSON object")
	}
	hits, ok := root.field("hits")
	if !ok {
		return node{}, hitsEnvelope{}, parseError(op, "missing hits")
	}
	total, ok := decodeTotal(hits)
	if !ok {
		return node{}, hitsEnvelope{}, parseError(op, "missing or invalid hits.total")
	}
	list, ok := hits.field("hits")
	if !ok {
		return node{}, hitsEnvelope{}, parseError(op, "missing hits.hits")
	}
	items, ok := list.array()
	if !ok {
		return node{}, hitsEnvelope{}, parseError(op, "hits.hits is not an array")
	}
	return root, hitsEnvelope{total: total, hits: items}, nil
}

func decodeTotal(hits node) (int64, bool) {
	t, ok := hits.field("total")
	if !ok {
		return 0, false
	}
	if t.isObject() {
		v, ok := t.field("value")
		if !ok {
			return 0, false
		}
		return v.count()
	}
	return t.count()
}

// decodeHits maps each hit to an Article. Hits without an object _source or a
// string title are skipped.
func decodeHits(hits []node) []entity.Article {
	articles := make([]entity.Article, 0, len(hits))
	for _, h := range hits {
		src, ok := h.field("_source")
		if !ok || !src.isObject() {
			continue
		}
		a, ok := decodeArticle(src, h)
		if !ok {
			continue
		}
		articles = append(articles, a)
	}
	return articles
}

// decodeArticle reads an article from src field by field. A field of the
// wrong type is treated as absent. meta supplies _id when src has no id.
func decodeArticle(src, meta node) (entity.Article, bool) {
	title, ok := optString(src, "title")
	if !ok {
		return entity.Article{}, false
	}
	a := entity.Article{
		Title:       *title,
		ID:          firstString(src, meta),
		Content:     optStringOnly(src, "content"),
		Summary:     optStringOnly(src, "summary"),
		URL:         optStringOnly(src, "url"),
		Source:      optStringOnly(src, "source"),
		Category:    optStringOnly(src, "category"),
		Author:      optStringOnly(src, "author"),
		ImageURL:    optStringOnly(src, "image_url"),
		PublishedAt: optTime(src, "published_at"),
		CrawledAt:   optTime(src, "crawled_at"),
	}
	return a, true
}

func firstString(src, meta node) *string {
	if id := optStringOnly(src, "id"); id != nil {
		return id
	}
	return optStringOnly(meta, "_id")
}

func optString(n node, key string) (*string, bool) {
	v, ok := n.field(key)
	if !ok {
		return nil, false
	}
	s, ok := v.str()
	if !ok {
		return nil, false
	}
	return &s, true
}

func optStringOnly(n node, key string) *string {
	s, _ := optString(n, key)
	return s
}

func optTime(n node, key string) *time.Time {
	v, ok := n.field(key)
	if !ok {
		return nil
	}
	t, ok := v.timestamp()
	if !ok {
		return nil
	}
	return &t
}
