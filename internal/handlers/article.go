package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/gopress/internal/events"
	"github.com/jonesrussell/gopress/internal/logger"
	"github.com/jonesrussell/gopress/internal/metrics"
	"github.com/jonesrussell/gopress/internal/models"
)

type ArticleHandler struct {
	articles  ArticleStore
	tags      TagStore
	publisher *events.Publisher
	logger    logger.Logger
}

func NewArticleHandler(
	articles ArticleStore,
	tags TagStore,
	publisher *events.Publisher,
	log logger.Logger,
) *ArticleHandler {
	return &ArticleHandler{
		articles:  articles,
		tags:      tags,
		publisher: publisher,
		logger:    log,
	}
}

// List handles GET /articles with optional categoryId, tags (comma-joined
// ids), page, and limit query parameters.
func (h *ArticleHandler) List(c *gin.Context) {
	filter := parseListFilter(c)

	articles, err := h.articles.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to list articles",
			logger.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list articles"})
		return
	}

	c.JSON(http.StatusOK, articles)
}

func parseListFilter(c *gin.Context) models.ArticleListFilter {
	filter := models.ArticleListFilter{
		CategoryID: c.Query("categoryId"),
		Page:       models.DefaultPage,
		Limit:      models.DefaultLimit,
	}

	if raw := c.Query("tags"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(id); trimmed != "" {
				filter.TagIDs = append(filter.TagIDs, trimmed)
			}
		}
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}

	return filter
}

// GetByID handles GET /articles/:id.
func (h *ArticleHandler) GetByID(c *gin.Context) {
	id, ok := parseArticleID(c)
	if !ok {
		return
	}

	article, err := h.articles.GetByID(c.Request.Context(), id)
	if err != nil {
		handleStoreError(c, err, "article", "get")
		return
	}

	c.JSON(http.StatusOK, article)
}

// Create handles POST /articles. The tag upsert protocol runs before the
// article row is written so every referenced tag exists when the association
// commits.
func (h *ArticleHandler) Create(c *gin.Context) {
	req, ok := bindWriteRequest(c)
	if !ok {
		return
	}

	article := req.NewArticle()

	created, err := h.tags.EnsureExists(c.Request.Context(), article.Tags)
	if err != nil {
		handleStoreError(c, err, "tag", "upsert")
		return
	}
	metrics.TagsUpserted.Add(float64(created))

	if err := h.articles.Create(c.Request.Context(), article); err != nil {
		h.logger.Error("Failed to create article",
			logger.String("title", article.Title),
			logger.Error(err),
		)
		handleStoreError(c, err, "article", "create")
		return
	}

	h.logger.Info("Article created",
		logger.Int64("article_id", article.ID),
		logger.String("category_id", article.CategoryID),
	)
	metrics.ArticlesCreated.Inc()
	h.publisher.PublishAsync(events.ArticleEvent{
		EventType:  events.ArticleCreated,
		ArticleID:  article.ID,
		Title:      article.Title,
		CategoryID: article.CategoryID,
		TagIDs:     tagIDs(article.Tags),
	})

	c.JSON(http.StatusCreated, h.refetch(c, article))
}

// Update handles PUT /articles/:id. The entire tag association set is
// replaced, not merged.
func (h *ArticleHandler) Update(c *gin.Context) {
	id, ok := parseArticleID(c)
	if !ok {
		return
	}

	req, ok := bindWriteRequest(c)
	if !ok {
		return
	}

	article := req.NewArticle()
	article.ID = id

	created, err := h.tags.EnsureExists(c.Request.Context(), article.Tags)
	if err != nil {
		handleStoreError(c, err, "tag", "upsert")
		return
	}
	metrics.TagsUpserted.Add(float64(created))

	if err := h.articles.Update(c.Request.Context(), article); err != nil {
		handleStoreError(c, err, "article", "update")
		return
	}

	h.logger.Info("Article updated",
		logger.Int64("article_id", article.ID),
	)
	metrics.ArticlesUpdated.Inc()
	h.publisher.PublishAsync(events.ArticleEvent{
		EventType:  events.ArticleUpdated,
		ArticleID:  article.ID,
		Title:      article.Title,
		CategoryID: article.CategoryID,
		TagIDs:     tagIDs(article.Tags),
	})

	c.JSON(http.StatusOK, h.refetch(c, article))
}

// Delete handles DELETE /articles/:id, responding with the deleted record.
// Tag and category records are never removed, only the associations.
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := parseArticleID(c)
	if !ok {
		return
	}

	article, err := h.articles.GetByID(c.Request.Context(), id)
	if err != nil {
		handleStoreError(c, err, "article", "get")
		return
	}

	if err := h.articles.Delete(c.Request.Context(), id); err != nil {
		handleStoreError(c, err, "article", "delete")
		return
	}

	h.logger.Info("Article deleted",
		logger.Int64("article_id", id),
	)
	metrics.ArticlesDeleted.Inc()
	h.publisher.PublishAsync(events.ArticleEvent{
		EventType:  events.ArticleDeleted,
		ArticleID:  id,
		Title:      article.Title,
		CategoryID: article.CategoryID,
	})

	c.JSON(http.StatusOK, article)
}

func parseArticleID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID format"})
		return 0, false
	}
	return id, true
}

func bindWriteRequest(c *gin.Context) (*models.ArticleWriteRequest, bool) {
	var req models.ArticleWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return nil, false
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return &req, true
}

// refetch returns the canonical stored record. Pre-existing tags keep their
// stored title and description even when the request's descriptors drifted,
// so the response must come from the store, not the request.
func (h *ArticleHandler) refetch(c *gin.Context, article *models.Article) *models.Article {
	stored, err := h.articles.GetByID(c.Request.Context(), article.ID)
	if err != nil {
		return article
	}
	return stored
}

func tagIDs(tags []models.Tag) []string {
	if len(tags) == 0 {
		return nil
	}
	ids := make([]string, len(tags))
	for i, t := range tags {
		ids[i] = t.ID
	}
	return ids
}
