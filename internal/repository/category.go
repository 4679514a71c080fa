package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jonesrussell/gopress/internal/logger"
	"github.com/jonesrussell/gopress/internal/models"
)

type CategoryRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewCategoryRepository(db *sql.DB, log logger.Logger) *CategoryRepository {
	return &CategoryRepository{
		db:     db,
		logger: log,
	}
}

// List returns all categories ordered by title.
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	query := `
		SELECT id, title, description
		FROM categories
		ORDER BY title
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var category models.Category
		if scanErr := rows.Scan(&category.ID, &category.Title, &category.Description); scanErr != nil {
			return nil, fmt.Errorf("scan category: %w", scanErr)
		}
		categories = append(categories, category)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("iterate categories: %w", rowsErr)
	}

	return categories, nil
}

// GetByID returns the category with the given slug id.
func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category

	query := `
		SELECT id, title, description
		FROM categories
		WHERE id = $1
	`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&category.ID, &category.Title, &category.Description,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query category: %w", err)
	}

	return &category, nil
}

// Create inserts a new category. Two titles deriving the same slug collide
// and surface as ErrAlreadyExists; no disambiguation is attempted.
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (id, title, description)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.ExecContext(ctx, query, category.ID, category.Title, category.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("category %q: %w", category.ID, models.ErrAlreadyExists)
		}
		return fmt.Errorf("insert category: %w", err)
	}

	r.logger.Info("Category created",
		logger.String("category_id", category.ID),
	)

	return nil
}
