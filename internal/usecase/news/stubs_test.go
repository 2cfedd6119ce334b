package news_test

import (
	"context"
	"errors"
	"sync"

	"news-api/internal/domain/entity"
)

var errBoom = errors.New("boom")

type stubSearcher struct {
	mu        sync.Mutex
	page      entity.ArticlePage
	article   entity.Article
	dashboard entity.DashboardStats
	err       error
	up        bool

	dashboardCalls int
	lastPage       int
	lastLimit      int
	lastKeyword    string
}

func (s *stubSearcher) ListArticles(_ context.Context, page, limit int) (entity.ArticlePage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastPage, s.lastLimit = page, limit
	return s.page, s.err
}

func (s *stubSearcher) SearchArticles(_ context.Context, keyword string, page, limit int) (entity.ArticlePage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastKeyword, s.lastPage, s.lastLimit = keyword, page, limit
	return s.page, s.err
}

func (s *stubSearcher) GetArticleByID(_ context.Context, _ string) (entity.Article, error) {
	return s.article, s.err
}

func (s *stubSearcher) GetDashboardStats(_ context.Context) (entity.DashboardStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dashboardCalls++
	return s.dashboard, s.err
}

func (s *stubSearcher) Ping(_ context.Context) bool { return s.up }

type stubCrawlStats struct {
	today     *entity.CrawlStats
	rows      []entity.CrawlStats
	err       error
	recentArg int
}

func (s *stubCrawlStats) Today(_ context.Context) (*entity.CrawlStats, error) {
	return s.today, s.err
}

func (s *stubCrawlStats) Recent(_ context.Context, n int) ([]entity.CrawlStats, error) {
	s.recentArg = n
	if s.err != nil {
		return nil, s.err
	}
	if n < len(s.rows) {
		return s.rows[:n], nil
	}
	return s.rows, nil
}

func (s *stubCrawlStats) ListAll(_ context.Context) ([]entity.CrawlStats, error) {
	return s.rows, s.err
}

type stubCategories struct {
	cats []entity.Category
	err  error
}

func (s *stubCategories) ListByArticleCount(_ context.Context) ([]entity.Category, error) {
	return s.cats, s.err
}

type stubPinger struct{ err error }

func (p stubPinger) PingContext(_ context.Context) error { return p.err }

type memCache struct {
	stats    *entity.DashboardStats
	getErr   error
	setErr   error
	setCalls int
}

func (c *memCache) GetDashboard(_ context.Context) (entity.DashboardStats, bool, error) {
	if c.getErr != nil {
		return entity.DashboardStats{}, false, c.getErr
	}
	if c.stats == nil {
		return entity.DashboardStats{}, false, nil
	}
	return *c.stats, true, nil
}

func (c *memCache) SetDashboard(_ context.Context, stats entity.DashboardStats) error {
	c.setCalls++
	if c.setErr != nil {
		return c.setErr
	}
	c.stats = &stats
	return nil
}
