package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/lib/pq"

	"github.com/jonesrussell/gopress/internal/logger"
	"github.com/jonesrussell/gopress/internal/models"
)

type ArticleRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewArticleRepository(db *sql.DB, log logger.Logger) *ArticleRepository {
	return &ArticleRepository{
		db:     db,
		logger: log,
	}
}

// List returns articles ordered by descending id, optionally restricted to a
// category and to articles whose tag set intersects the given tag ids.
func (r *ArticleRepository) List(ctx context.Context, filter models.ArticleListFilter) ([]models.Article, error) {
	whereClause, args := buildListWhere(filter)

	limitPlaceholder := strconv.Itoa(len(args) + 1)
	offsetPlaceholder := strconv.Itoa(len(args) + 2)
	args = append(args, filter.Take(), filter.Offset())

	query := `
		SELECT id, title, description, body, category_id
		FROM articles
		WHERE 1=1` + whereClause + `
		ORDER BY id DESC
		LIMIT $` + limitPlaceholder + ` OFFSET $` + offsetPlaceholder

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	articles, err := scanArticleRows(rows)
	if err != nil {
		return nil, err
	}

	if loadErr := r.loadTags(ctx, articles); loadErr != nil {
		return nil, loadErr
	}

	return articles, nil
}

func buildListWhere(filter models.ArticleListFilter) (whereClause string, args []any) {
	args = make([]any, 0, 2)
	pos := 1

	if filter.CategoryID != "" {
		whereClause += fmt.Sprintf(" AND category_id = $%d", pos)
		args = append(args, filter.CategoryID)
		pos++
	}
	if len(filter.TagIDs) > 0 {
		whereClause += fmt.Sprintf(
			" AND EXISTS (SELECT 1 FROM article_tags at WHERE at.article_id = articles.id AND at.tag_id = ANY($%d))",
			pos,
		)
		args = append(args, pq.Array(filter.TagIDs))
	}

	return whereClause, args
}

func scanArticleRows(rows *sql.Rows) ([]models.Article, error) {
	articles := make([]models.Article, 0)
	for rows.Next() {
		var article models.Article
		if err := rows.Scan(
			&article.ID,
			&article.Title,
			&article.Description,
			&article.Body,
			&article.CategoryID,
		); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		article.Tags = make([]models.Tag, 0)
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}
	return articles, nil
}

// loadTags attaches the full tag set to each article in a single query.
func (r *ArticleRepository) loadTags(ctx context.Context, articles []models.Article) error {
	if len(articles) == 0 {
		return nil
	}

	ids := make([]int64, len(articles))
	index := make(map[int64]*models.Article, len(articles))
	for i := range articles {
		ids[i] = articles[i].ID
		index[articles[i].ID] = &articles[i]
	}

	query := `
		SELECT at.article_id, t.id, t.title, t.description
		FROM article_tags at
		JOIN tags t ON t.id = at.tag_id
		WHERE at.article_id = ANY($1)
		ORDER BY at.article_id, t.id
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("query article tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var articleID int64
		var tag models.Tag
		if scanErr := rows.Scan(&articleID, &tag.ID, &tag.Title, &tag.Description); scanErr != nil {
			return fmt.Errorf("scan article tag: %w", scanErr)
		}
		if article, ok := index[articleID]; ok {
			article.Tags = append(article.Tags, tag)
		}
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return fmt.Errorf("iterate article tags: %w", rowsErr)
	}

	return nil
}

// GetByID returns the article with its full tag set.
func (r *ArticleRepository) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	var article models.Article

	query := `
		SELECT id, title, description, body, category_id
		FROM articles
		WHERE id = $1
	`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&article.ID,
		&article.Title,
		&article.Description,
		&article.Body,
		&article.CategoryID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query article: %w", err)
	}

	article.Tags = make([]models.Tag, 0)
	articles := []models.Article{article}
	if loadErr := r.loadTags(ctx, articles); loadErr != nil {
		return nil, loadErr
	}

	return &articles[0], nil
}

// Create inserts a new article row and its tag associations in one
// transaction. Referenced tags must already exist; the caller runs the tag
// upsert protocol first. The store-assigned id is written back to article.
func (r *ArticleRepository) Create(ctx context.Context, article *models.Article) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			r.rollback(tx)
		}
	}()

	query := `
		INSERT INTO articles (title, description, body, category_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err = tx.QueryRowContext(ctx, query,
		article.Title,
		article.Description,
		article.Body,
		article.CategoryID,
	).Scan(&article.ID)
	if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}

	if err = insertTagLinks(ctx, tx, article.ID, article.Tags); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// Update replaces the article's scalar fields and its entire tag association
// set. Tags omitted from the new list are unlinked, not merged.
func (r *ArticleRepository) Update(ctx context.Context, article *models.Article) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			r.rollback(tx)
		}
	}()

	query := `
		UPDATE articles
		SET title = $2, description = $3, body = $4, category_id = $5
		WHERE id = $1
	`

	result, err := tx.ExecContext(ctx, query,
		article.ID,
		article.Title,
		article.Description,
		article.Body,
		article.CategoryID,
	)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		err = models.ErrNotFound
		return err
	}

	if _, err = tx.ExecContext(ctx,
		`DELETE FROM article_tags WHERE article_id = $1`, article.ID,
	); err != nil {
		return fmt.Errorf("clear article tags: %w", err)
	}

	if err = insertTagLinks(ctx, tx, article.ID, article.Tags); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// Delete removes the article; its tag associations go with it via ON DELETE
// CASCADE. Tag and category records are never touched.
func (r *ArticleRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}

	return nil
}

func insertTagLinks(ctx context.Context, tx *sql.Tx, articleID int64, tags []models.Tag) error {
	for _, tag := range models.DedupeTags(tags) {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO article_tags (article_id, tag_id) VALUES ($1, $2)`,
			articleID, tag.ID,
		); err != nil {
			return fmt.Errorf("link tag %q: %w", tag.ID, err)
		}
	}
	return nil
}

func (r *ArticleRepository) rollback(tx *sql.Tx) {
	if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
		r.logger.Error("Failed to rollback transaction",
			logger.Error(rbErr),
		)
	}
}
