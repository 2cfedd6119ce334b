package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"news-api/internal/domain/entity"
	"news-api/internal/infra/adapter/persistence/postgres"
)

func TestCategoryRepo_ListByArticleCount(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := []entity.Category{
		{ID: 2, Name: "politics", ArticleCount: 340},
		{ID: 1, Name: "economy", ArticleCount: 120},
	}
	rows := sqlmock.NewRows([]string{"id", "name", "article_count"})
	for _, c := range want {
		rows.AddRow(c.ID, c.Name, c.ArticleCount)
	}
	mock.ExpectQuery(`ORDER BY article_count DESC`).WillReturnRows(rows)

	repo := postgres.NewCategoryRepo(db)
	got, err := repo.ListByArticleCount(context.Background())
	if err != nil {
		t.Fatalf("ListByArticleCount err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCategoryRepo_Empty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`FROM categories`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "article_count"}))

	repo := postgres.NewCategoryRepo(db)
	got, err := repo.ListByArticleCount(context.Background())
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("got %#v, want empty non-nil slice", got)
	}
}

func TestCategoryRepo_Error(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`FROM categories`).WillReturnError(errors.New("relation does not exist"))

	repo := postgres.NewCategoryRepo(db)
	if _, err := repo.ListByArticleCount(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
