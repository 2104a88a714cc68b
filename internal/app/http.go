package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/conduit-backend/internal/http"
	httpH "github.com/yungbote/conduit-backend/internal/http/handlers"
	httpMW "github.com/yungbote/conduit-backend/internal/http/middleware"
	"github.com/yungbote/conduit-backend/internal/observability"
	"github.com/yungbote/conduit-backend/internal/platform/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health   *httpH.HealthHandler
	Auth     *httpH.AuthHandler
	User     *httpH.UserHandler
	Article  *httpH.ArticleHandler
	Favorite *httpH.FavoriteHandler
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}

func wireHandlers(log *logger.Logger, db *gorm.DB, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(db),
		Auth:     httpH.NewAuthHandler(services.Auth),
		User:     httpH.NewUserHandler(services.User, services.Auth),
		Article:  httpH.NewArticleHandler(services.Article),
		Favorite: httpH.NewFavoriteHandler(services.Favorite),
	}
}

func wireServer(log *logger.Logger, cfg Config, metrics *observability.Metrics, handlers Handlers, middleware Middleware) *http.Server {
	return http.NewServer(http.RouterConfig{
		Log:            log,
		Metrics:        metrics,
		ServiceName:    cfg.Otel.ServiceName,
		TracingEnabled: cfg.Otel.Enabled,
		CORSOrigins:    cfg.CORSAllowedOrigins,

		AuthMiddleware: middleware.Auth,

		HealthHandler:   handlers.Health,
		AuthHandler:     handlers.Auth,
		UserHandler:     handlers.User,
		ArticleHandler:  handlers.Article,
		FavoriteHandler: handlers.Favorite,
	})
}
