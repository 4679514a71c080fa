package bootstrap

import (
	"github.com/jonesrussell/gopress/internal/api"
	"github.com/jonesrussell/gopress/internal/config"
	"github.com/jonesrussell/gopress/internal/database"
	"github.com/jonesrussell/gopress/internal/events"
	"github.com/jonesrussell/gopress/internal/handlers"
	"github.com/jonesrussell/gopress/internal/logger"
	"github.com/jonesrussell/gopress/internal/repository"
)

// SetupHTTPServer wires repositories, handlers, and the router into a
// runnable HTTP server.
func SetupHTTPServer(
	cfg *config.Config,
	db *database.DB,
	publisher *events.Publisher,
	log logger.Logger,
) *api.Server {
	articleRepo := repository.NewArticleRepository(db.DB(), log)
	tagRepo := repository.NewTagRepository(db.DB(), log)
	categoryRepo := repository.NewCategoryRepository(db.DB(), log)

	h := api.Handlers{
		Articles:   handlers.NewArticleHandler(articleRepo, tagRepo, publisher, log),
		Tags:       handlers.NewTagHandler(tagRepo, log),
		Categories: handlers.NewCategoryHandler(categoryRepo, log),
		Health:     handlers.NewHealthHandler(cfg.Service.Version),
	}

	router := api.NewRouter(cfg, h, log)
	return api.NewServer(cfg, router, log)
}
