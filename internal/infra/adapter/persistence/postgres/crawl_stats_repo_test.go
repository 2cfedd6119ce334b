package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"news-api/internal/domain/entity"
	"news-api/internal/infra/adapter/persistence/postgres"
	"news-api/internal/resilience/circuitbreaker"
)

/* ──────────────────────────────── helpers ──────────────────────────────── */

var crawlCols = []string{"id", "date", "total_crawled", "success_count", "failed_count", "created_at"}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func crawlRows(stats ...entity.CrawlStats) *sqlmock.Rows {
	rows := sqlmock.NewRows(crawlCols)
	for _, s := range stats {
		rows.AddRow(s.ID, s.Date.Time, s.TotalCrawled, s.SuccessCount, s.FailedCount, s.CreatedAt)
	}
	return rows
}

func sample(id int32, date string, total, ok, failed int32) entity.CrawlStats {
	return entity.CrawlStats{
		ID:           id,
		Date:         entity.NewDate(day(date)),
		TotalCrawled: total,
		SuccessCount: ok,
		FailedCount:  failed,
		CreatedAt:    day(date).Add(6 * time.Hour),
	}
}

/* ──────────────────────────────── 1. Today ──────────────────────────────── */

func TestCrawlStatsRepo_Today(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := sample(7, "2024-05-02", 120, 110, 10)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE date = CURRENT_DATE`)).
		WillReturnRows(crawlRows(want))

	repo := postgres.NewCrawlStatsRepo(db)
	got, err := repo.Today(context.Background())
	if err != nil {
		t.Fatalf("Today err=%v", err)
	}
	if diff := cmp.Diff(&want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCrawlStatsRepo_Today_NoRow(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`FROM crawl_stats`).WillReturnRows(crawlRows())

	repo := postgres.NewCrawlStatsRepo(db)
	got, err := repo.Today(context.Background())
	if err != nil || got != nil {
		t.Fatalf("Today got=%v err=%v, want nil, nil", got, err)
	}
}

/* ──────────────────────────────── 2. Recent ──────────────────────────────── */

func TestCrawlStatsRepo_Recent(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := []entity.CrawlStats{
		sample(3, "2024-05-03", 10, 9, 1),
		sample(2, "2024-05-02", 20, 20, 0),
	}
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY date DESC`)).
		WithArgs(7).
		WillReturnRows(crawlRows(want...))

	repo := postgres.NewCrawlStatsRepo(db)
	got, err := repo.Recent(context.Background(), 7)
	if err != nil {
		t.Fatalf("Recent err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCrawlStatsRepo_Recent_NonPositive(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	repo := postgres.NewCrawlStatsRepo(db)
	got, err := repo.Recent(context.Background(), 0)
	if err != nil || len(got) != 0 {
		t.Fatalf("Recent(0) got=%v err=%v", got, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ──────────────────────────────── 3. ListAll ──────────────────────────────── */

func TestCrawlStatsRepo_ListAll(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`FROM crawl_stats`).
		WillReturnRows(crawlRows(
			sample(3, "2024-05-03", 10, 9, 1),
			sample(2, "2024-05-02", 20, 20, 0),
			sample(1, "2024-05-01", 5, 0, 5),
		))

	repo := postgres.NewCrawlStatsRepo(db)
	got, err := repo.ListAll(context.Background())
	if err != nil || len(got) != 3 {
		t.Fatalf("ListAll err=%v len=%d", err, len(got))
	}
	if got[0].Date.String() != "2024-05-03" {
		t.Errorf("first date = %s, want 2024-05-03", got[0].Date)
	}
}

func TestCrawlStatsRepo_QueryError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`FROM crawl_stats`).WillReturnError(errors.New("connection reset"))

	repo := postgres.NewCrawlStatsRepo(db)
	if _, err := repo.ListAll(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestCrawlStatsRepo_ThroughCircuitBreaker(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := sample(1, "2024-05-01", 5, 5, 0)
	mock.ExpectQuery(`FROM crawl_stats`).WillReturnRows(crawlRows(want))

	repo := postgres.NewCrawlStatsRepo(circuitbreaker.NewDB(db))
	got, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll err=%v", err)
	}
	if diff := cmp.Diff([]entity.CrawlStats{want}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}
