package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/gopress/internal/api"
	"github.com/jonesrussell/gopress/internal/config"
	"github.com/jonesrussell/gopress/internal/handlers"
	"github.com/jonesrussell/gopress/internal/models"
	"github.com/jonesrussell/gopress/internal/testhelpers"
)

type stubArticleStore struct {
	gotID int64
}

func (s *stubArticleStore) List(context.Context, models.ArticleListFilter) ([]models.Article, error) {
	return []models.Article{}, nil
}

func (s *stubArticleStore) GetByID(_ context.Context, id int64) (*models.Article, error) {
	s.gotID = id
	return &models.Article{ID: id, Tags: []models.Tag{}}, nil
}

func (s *stubArticleStore) Create(context.Context, *models.Article) error { return nil }
func (s *stubArticleStore) Update(context.Context, *models.Article) error { return nil }
func (s *stubArticleStore) Delete(context.Context, int64) error           { return nil }

type stubTagStore struct {
	listed bool
}

func (s *stubTagStore) List(context.Context) ([]models.Tag, error) {
	s.listed = true
	return []models.Tag{{ID: "go", Title: "Go"}}, nil
}

func (s *stubTagStore) Create(context.Context, *models.Tag) error { return nil }

func (s *stubTagStore) EnsureExists(context.Context, []models.Tag) (int, error) {
	return 0, nil
}

type stubCategoryStore struct{}

func (stubCategoryStore) List(context.Context) ([]models.Category, error) {
	return []models.Category{}, nil
}

func (stubCategoryStore) GetByID(_ context.Context, id string) (*models.Category, error) {
	return &models.Category{ID: id}, nil
}

func (stubCategoryStore) Create(context.Context, *models.Category) error { return nil }

func testRouter(t *testing.T, articles *stubArticleStore, tags *stubTagStore) http.Handler {
	t.Helper()
	log := testhelpers.NewTestLogger()

	cfg := &config.Config{}
	cfg.Server.CORSOrigins = []string{"http://localhost:3000"}
	cfg.Service.Version = "test"

	h := api.Handlers{
		Articles:   handlers.NewArticleHandler(articles, tags, nil, log),
		Tags:       handlers.NewTagHandler(tags, log),
		Categories: handlers.NewCategoryHandler(stubCategoryStore{}, log),
		Health:     handlers.NewHealthHandler(cfg.Service.Version),
	}
	return api.NewRouter(cfg, h, log)
}

func TestRouter_TagsRouteNotShadowedByArticleID(t *testing.T) {
	articles := &stubArticleStore{}
	tags := &stubTagStore{}
	router := testRouter(t, articles, tags)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/articles/tags", http.NoBody)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, tags.listed)
	assert.Zero(t, articles.gotID)

	var got []models.Tag
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "go", got[0].ID)
}

func TestRouter_ArticleByID(t *testing.T) {
	articles := &stubArticleStore{}
	tags := &stubTagStore{}
	router := testRouter(t, articles, tags)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/articles/42", http.NoBody)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(42), articles.gotID)
}

func TestRouter_Health(t *testing.T) {
	router := testRouter(t, &stubArticleStore{}, &stubTagStore{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", http.NoBody)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestRouter_Metrics(t *testing.T) {
	router := testRouter(t, &stubArticleStore{}, &stubTagStore{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/metrics", http.NoBody)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
