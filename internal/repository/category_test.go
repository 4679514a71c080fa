package repository_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/gopress/internal/models"
	"github.com/jonesrussell/gopress/internal/repository"
	"github.com/jonesrussell/gopress/internal/testhelpers"
)

func newCategoryRepo(t *testing.T) (*repository.CategoryRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err, "failed to create sqlmock")
	t.Cleanup(func() { db.Close() })

	return repository.NewCategoryRepository(db, testhelpers.NewTestLogger()), mock
}

func TestCategoryRepository_List(t *testing.T) {
	repo, mock := newCategoryRepo(t)

	mock.ExpectQuery(`(?s)SELECT .+ FROM categories`).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "title", "description"}).
				AddRow("news", "News", "Current events").
				AddRow("tutorials", "Tutorials", "How-to guides"),
		)

	categories, err := repo.List(context.Background())
	require.NoError(t, err)

	require.Len(t, categories, 2)
	assert.Equal(t, "news", categories[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_GetByID(t *testing.T) {
	repo, mock := newCategoryRepo(t)

	mock.ExpectQuery(`(?s)SELECT .+ FROM categories WHERE id`).
		WithArgs("news").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "title", "description"}).
				AddRow("news", "News", "Current events"),
		)

	category, err := repo.GetByID(context.Background(), "news")
	require.NoError(t, err)

	assert.Equal(t, "News", category.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newCategoryRepo(t)

	mock.ExpectQuery(`(?s)SELECT .+ FROM categories WHERE id`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description"}))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_Create(t *testing.T) {
	repo, mock := newCategoryRepo(t)

	mock.ExpectExec("INSERT INTO categories").
		WithArgs("local-news", "Local News", "City coverage").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &models.Category{
		ID:          "local-news",
		Title:       "Local News",
		Description: "City coverage",
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_Create_DuplicateSlugConflicts(t *testing.T) {
	repo, mock := newCategoryRepo(t)

	mock.ExpectExec("INSERT INTO categories").
		WithArgs("news", "NEWS", "colliding title").
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Create(context.Background(), &models.Category{
		ID:          "news",
		Title:       "NEWS",
		Description: "colliding title",
	})

	assert.ErrorIs(t, err, models.ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
