// Package search is the gateway to the OpenSearch article index. It turns
// pagination and keyword intents into engine queries, decodes hits and
// aggregations into entity values, and classifies every failure into the
// ErrBadRequest / ErrNotFound / ErrEngineUnavailable / ErrDecodeFailed
// vocabulary.
//
// The gateway performs exactly one engine call per operation and never
// retries. It holds only immutable configuration and is safe for concurrent
// use.
package search

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"news-api/internal/common/pagination"
	"news-api/internal/domain/entity"
	"news-api/internal/observability/metrics"
	"news-api/internal/observability/tracing"
)

// Default settings applied by New when the Config leaves them zero.
const (
	DefaultURL         = "http://localhost:9200"
	DefaultIndex       = "baram-articles"
	DefaultTimeout     = 10 * time.Second
	DefaultPingTimeout = 3 * time.Second
)

// Config configures the gateway.
type Config struct {
	URL         string        // Engine base URL
	Index       string        // Article index name
	Username    string        // Optional basic auth user
	Password    string        // Optional basic auth password
	Timeout     time.Duration // Upper bound for each query call; 0 uses DefaultTimeout
	PingTimeout time.Duration // Upper bound for Ping; 0 uses DefaultPingTimeout
	Pagination  pagination.Config

	// Transport overrides the HTTP transport (tests, custom TLS).
	Transport http.RoundTripper
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	if c.URL == "" {
		return errors.New("search: engine URL is required")
	}
	u, err := url.Parse(c.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("search: invalid engine URL %q", c.URL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("search: unsupported engine URL scheme %q", u.Scheme)
	}
	if strings.TrimSpace(c.Index) == "" || strings.ContainsAny(c.Index, "/?#, ") {
		return fmt.Errorf("search: invalid index name %q", c.Index)
	}
	if c.Timeout < 0 || c.PingTimeout < 0 {
		return errors.New("search: timeouts must not be negative")
	}
	return nil
}

// Gateway is the read-only client of the article index.
type Gateway struct {
	client      *opensearch.Client
	index       string
	timeout     time.Duration
	pingTimeout time.Duration
	paging      pagination.Config
	logger      *slog.Logger
}

// New builds a Gateway from cfg. The underlying client has its own retry
// logic disabled.
func New(cfg Config, logger *slog.Logger) (*Gateway, error) {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Index == "" {
		cfg.Index = DefaultIndex
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.PingTimeout == 0 {
		cfg.PingTimeout = DefaultPingTimeout
	}
	if cfg.Pagination == (pagination.Config{}) {
		cfg.Pagination = pagination.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	client, err := opensearch.NewClient(opensearch.Config{
		Addresses:    []string{strings.TrimRight(cfg.URL, "/")},
		Username:     cfg.Username,
		Password:     cfg.Password,
		Transport:    cfg.Transport,
		DisableRetry: true,
	})
	if err != nil {
		return nil, fmt.Errorf("search: create client: %w", err)
	}

	return &Gateway{
		client:      client,
		index:       cfg.Index,
		timeout:     cfg.Timeout,
		pingTimeout: cfg.PingTimeout,
		paging:      cfg.Pagination,
		logger:      logger.With(slog.String("component", "search"), slog.String("index", cfg.Index)),
	}, nil
}

// ListArticles returns one page of all articles, newest first.
func (g *Gateway) ListArticles(ctx context.Context, page, limit int) (entity.ArticlePage, error) {
	const op = "list"
	w, err := g.window(op, page, limit)
	if err != nil {
		return entity.ArticlePage{}, err
	}

	ctx, span := tracing.GetTracer().Start(ctx, "search.ListArticles")
	defer span.End()
	start := time.Now()
	span.SetAttributes(attribute.Int("search.page", w.Page), attribute.Int("search.limit", w.Limit))

	result, err := g.searchPage(ctx, op, listQuery(w), w)
	g.observe(ctx, span, op, start, err)
	if err == nil {
		metrics.UpdateArticlesIndexed(result.Total)
	}
	return result, err
}

// SearchArticles returns one page of articles matching keyword, newest first.
// A blank keyword fails with ErrBadRequest before any engine call.
func (g *Gateway) SearchArticles(ctx context.Context, keyword string, page, limit int) (entity.ArticlePage, error) {
	const op = "search"
	keyword, ok := normalizeKeyword(keyword)
	if !ok {
		err := badRequestError(op, "search keyword must not be empty")
		metrics.RecordEngineRequest(op, outcome(err), 0)
		return entity.ArticlePage{}, err
	}
	w, err := g.window(op, page, limit)
	if err != nil {
		return entity.ArticlePage{}, err
	}

	ctx, span := tracing.GetTracer().Start(ctx, "search.SearchArticles")
	defer span.End()
	start := time.Now()
	span.SetAttributes(
		attribute.Int("search.page", w.Page),
		attribute.Int("search.limit", w.Limit),
		attribute.Int("search.keyword_length", len(keyword)),
	)

	result, err := g.searchPage(ctx, op, searchQuery(keyword, w), w)
	g.observe(ctx, span, op, start, err)
	return result, err
}

// GetArticleByID fetches a single article. A 404 or found:false response
// yields ErrNotFound.
func (g *Gateway) GetArticleByID(ctx context.Context, id string) (entity.Article, error) {
	const op = "get"
	if strings.TrimSpace(id) == "" {
		return entity.Article{}, badRequestError(op, "article id must not be empty")
	}

	ctx, span := tracing.GetTracer().Start(ctx, "search.GetArticleByID")
	defer span.End()
	start := time.Now()
	span.SetAttributes(attribute.String("search.document_id", id))

	article, err := g.getArticle(ctx, op, id)
	g.observe(ctx, span, op, start, err)
	return article, err
}

// GetDashboardStats runs the aggregation query behind the dashboard.
func (g *Gateway) GetDashboardStats(ctx context.Context) (entity.DashboardStats, error) {
	const op = "dashboard"

	ctx, span := tracing.GetTracer().Start(ctx, "search.GetDashboardStats")
	defer span.End()
	start := time.Now()

	stats, err := g.dashboard(ctx, op)
	g.observe(ctx, span, op, start, err)
	if err == nil {
		metrics.UpdateArticlesIndexed(stats.TotalArticles)
	}
	return stats, err
}

// Ping reports whether the cluster health endpoint answers with a 2xx status
// within the ping timeout. Every failure degrades to false.
func (g *Gateway) Ping(ctx context.Context) bool {
	const op = "ping"
	ctx, cancel := context.WithTimeout(ctx, g.pingTimeout)
	defer cancel()

	ctx, span := tracing.GetTracer().Start(ctx, "search.Ping")
	defer span.End()

	start := time.Now()
	res, err := opensearchapi.ClusterHealthRequest{}.Do(ctx, g.client)
	if err != nil {
		g.observe(ctx, span, op, start, transportError(op, err))
		return false
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)

	if res.IsError() {
		g.observe(ctx, span, op, start, statusError(op, res.StatusCode, nil))
		return false
	}
	g.observe(ctx, span, op, start, nil)
	return true
}

// window clamps page and limit and rejects pages past the engine's result
// window before any call is made.
func (g *Gateway) window(op string, page, limit int) (pagination.Window, error) {
	w := g.paging.Normalize(page, limit)
	if !w.WithinResultWindow() {
		err := badRequestError(op, fmt.Sprintf(
			"page must be at most %d for limit %d", pagination.MaxResultWindow/w.Limit, w.Limit))
		metrics.RecordEngineRequest(op, outcome(err), 0)
		return pagination.Window{}, err
	}
	return w, nil
}

func (g *Gateway) searchPage(ctx context.Context, op string, q query, w pagination.Window) (entity.ArticlePage, error) {
	body, err := g.search(ctx, op, q)
	if err != nil {
		return entity.ArticlePage{}, err
	}
	_, env, err := decodeEnvelope(op, body)
	if err != nil {
		return entity.ArticlePage{}, err
	}
	return entity.ArticlePage{
		Articles: decodeHits(env.hits),
		Total:    env.total,
		Page:     w.Page,
		Limit:    w.Limit,
	}, nil
}

func (g *Gateway) dashboard(ctx context.Context, op string) (entity.DashboardStats, error) {
	body, err := g.search(ctx, op, dashboardQuery())
	if err != nil {
		return entity.DashboardStats{}, err
	}
	root, env, err := decodeEnvelope(op, body)
	if err != nil {
		return entity.DashboardStats{}, err
	}
	return decodeDashboard(root, env.total), nil
}

// search issues POST /{index}/_search and returns the 2xx body.
func (g *Gateway) search(ctx context.Context, op string, q query) ([]byte, error) {
	payload, err := q.encode()
	if err != nil {
		return nil, fmt.Errorf("search %s: encode query: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req := opensearchapi.SearchRequest{
		Index: []string{g.index},
		Body:  bytes.NewReader(payload),
	}
	res, err := req.Do(ctx, g.client)
	if err != nil {
		return nil, transportError(op, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, transportError(op, err)
	}
	if res.IsError() {
		return nil, statusError(op, res.StatusCode, body)
	}
	return body, nil
}

// getArticle issues GET /{index}/_doc/{id}.
func (g *Gateway) getArticle(ctx context.Context, op, id string) (entity.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req := opensearchapi.GetRequest{
		Index:      g.index,
		DocumentID: url.PathEscape(id),
	}
	res, err := req.Do(ctx, g.client)
	if err != nil {
		return entity.Article{}, transportError(op, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return entity.Article{}, transportError(op, err)
	}
	if res.StatusCode == http.StatusNotFound {
		return entity.Article{}, notFoundError(op)
	}
	if res.IsError() {
		return entity.Article{}, statusError(op, res.StatusCode, body)
	}

	root, ok := parseNode(body)
	if !ok || !root.isObject() {
		return entity.Article{}, parseError(op, "response is not a JSON object")
	}
	if found, ok := root.field("found"); ok {
		if b, ok := found.boolean(); ok && !b {
			return entity.Article{}, notFoundError(op)
		}
	}
	src, ok := root.field("_source")
	if !ok || !src.isObject() {
		return entity.Article{}, parseError(op, "missing _source")
	}
	article, ok := decodeArticle(src, root)
	if !ok {
		return entity.Article{}, parseError(op, "document has no title")
	}
	return article, nil
}

// observe records metrics, span status and a log line for one operation.
func (g *Gateway) observe(ctx context.Context, span trace.Span, op string, start time.Time, err error) {
	elapsed := time.Since(start)
	metrics.RecordEngineRequest(op, outcome(err), elapsed)
	if err == nil {
		span.SetStatus(codes.Ok, "")
		return
	}

	var se *Error
	if !errors.As(err, &se) {
		se = &Error{Kind: KindTransport, Op: op, Err: err}
	}
	span.SetAttributes(attribute.String("search.error_kind", se.Kind.String()))
	if se.StatusCode != 0 {
		span.SetAttributes(attribute.Int("search.status_code", se.StatusCode))
	}

	attrs := []any{
		slog.String("operation", op),
		slog.String("kind", se.Kind.String()),
		slog.Duration("duration", elapsed),
	}
	if se.StatusCode != 0 {
		attrs = append(attrs, slog.Int("status_code", se.StatusCode))
	}
	if se.Body != "" {
		attrs = append(attrs, slog.String("engine_body", se.Body))
	}
	if se.Err != nil {
		attrs = append(attrs, slog.Any("error", se.Err))
	}

	switch se.Kind {
	case KindNotFound, KindBadRequest:
		g.logger.DebugContext(ctx, "search request rejected", attrs...)
	case KindParse:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		g.logger.ErrorContext(ctx, "search response could not be decoded", attrs...)
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		g.logger.WarnContext(ctx, "search engine request failed", attrs...)
	}
}
