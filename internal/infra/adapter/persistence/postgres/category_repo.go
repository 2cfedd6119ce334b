package postgres

import (
	"context"
	"fmt"
	"time"

	"news-api/internal/domain/entity"
	"news-api/internal/repository"
)

type CategoryRepo struct{ db Querier }

func NewCategoryRepo(db Querier) repository.CategoryRepository {
	return &CategoryRepo{db: db}
}

func (repo *CategoryRepo) ListByArticleCount(ctx context.Context) ([]entity.Category, error) {
	const query = `
SELECT id, name, article_count
FROM categories
ORDER BY article_count DESC, name ASC`
	defer observe("select_categories", time.Now())

	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListByArticleCount: %w", err)
	}
	defer func() { _ = rows.Close() }()

	categories := make([]entity.Category, 0, 16)
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ArticleCount); err != nil {
			return nil, fmt.Errorf("ListByArticleCount: Scan: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListByArticleCount: %w", err)
	}
	return categories, nil
}
