// Package handlers implements the HTTP handlers for articles, categories,
// and tags. Handlers depend on store interfaces rather than concrete
// repositories so tests can substitute fakes.
package handlers

import (
	"context"

	"github.com/jonesrussell/gopress/internal/models"
)

// ArticleStore is the persistence surface the article handlers need.
type ArticleStore interface {
	List(ctx context.Context, filter models.ArticleListFilter) ([]models.Article, error)
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	Create(ctx context.Context, article *models.Article) error
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id int64) error
}

// TagStore is the persistence surface the tag handlers and the article write
// path need. EnsureExists is the tag upsert protocol: it guarantees every
// descriptor exists before an article is linked to it and reports how many
// tags it created.
type TagStore interface {
	List(ctx context.Context) ([]models.Tag, error)
	Create(ctx context.Context, tag *models.Tag) error
	EnsureExists(ctx context.Context, tags []models.Tag) (int, error)
}

// CategoryStore is the persistence surface the category handlers need.
type CategoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
}
