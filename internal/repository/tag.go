// Package repository implements PostgreSQL persistence for articles,
// categories, and tags.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jonesrussell/gopress/internal/logger"
	"github.com/jonesrussell/gopress/internal/models"
)

type TagRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewTagRepository(db *sql.DB, log logger.Logger) *TagRepository {
	return &TagRepository{
		db:     db,
		logger: log,
	}
}

// List returns all tags, unfiltered and unpaginated.
func (r *TagRepository) List(ctx context.Context) ([]models.Tag, error) {
	query := `
		SELECT id, title, description
		FROM tags
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}
	defer rows.Close()

	tags := make([]models.Tag, 0)
	for rows.Next() {
		var tag models.Tag
		if scanErr := rows.Scan(&tag.ID, &tag.Title, &tag.Description); scanErr != nil {
			return nil, fmt.Errorf("scan tag: %w", scanErr)
		}
		tags = append(tags, tag)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("iterate tags: %w", rowsErr)
	}

	return tags, nil
}

// GetByID returns the tag with the given slug id.
func (r *TagRepository) GetByID(ctx context.Context, id string) (*models.Tag, error) {
	var tag models.Tag

	query := `
		SELECT id, title, description
		FROM tags
		WHERE id = $1
	`

	err := r.db.QueryRowContext(ctx, query, id).Scan(&tag.ID, &tag.Title, &tag.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query tag: %w", err)
	}

	return &tag, nil
}

// Create inserts a new tag. A colliding id surfaces as ErrAlreadyExists.
func (r *TagRepository) Create(ctx context.Context, tag *models.Tag) error {
	query := `
		INSERT INTO tags (id, title, description)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.ExecContext(ctx, query, tag.ID, tag.Title, tag.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("tag %q: %w", tag.ID, models.ErrAlreadyExists)
		}
		return fmt.Errorf("insert tag: %w", err)
	}

	return nil
}

// EnsureExists guarantees every descriptor's tag exists before an article is
// linked to it. Each descriptor is looked up by id and inserted verbatim when
// absent; pre-existing tags are left untouched even if the descriptor's title
// or description differ. Descriptors are processed sequentially and the
// operation is not atomic as a whole: a crash mid-way leaves earlier tags
// created, which is safe because creation is idempotent with respect to
// existence. Losing an insert race against a concurrent identical insert
// surfaces as ErrAlreadyExists; the caller may retry.
// Returns the number of tags that were created.
func (r *TagRepository) EnsureExists(ctx context.Context, tags []models.Tag) (int, error) {
	created := 0
	for i := range tags {
		exists, err := r.exists(ctx, tags[i].ID)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}

		if createErr := r.Create(ctx, &tags[i]); createErr != nil {
			return created, createErr
		}
		created++

		r.logger.Debug("Tag created on first reference",
			logger.String("tag_id", tags[i].ID),
		)
	}

	return created, nil
}

func (r *TagRepository) exists(ctx context.Context, id string) (bool, error) {
	var found int

	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM tags WHERE id = $1`, id).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check tag %q: %w", id, err)
	}

	return true, nil
}
