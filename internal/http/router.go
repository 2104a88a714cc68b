package http

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/conduit-backend/internal/http/handlers"
	httpMW "github.com/yungbote/conduit-backend/internal/http/middleware"
	"github.com/yungbote/conduit-backend/internal/observability"
	"github.com/yungbote/conduit-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	Metrics        *observability.Metrics
	ServiceName    string
	TracingEnabled bool
	CORSOrigins    []string

	AuthMiddleware *httpMW.AuthMiddleware

	AuthHandler     *httpH.AuthHandler
	UserHandler     *httpH.UserHandler
	ArticleHandler  *httpH.ArticleHandler
	FavoriteHandler *httpH.FavoriteHandler
	HealthHandler   *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.TracingEnabled {
		name := strings.TrimSpace(cfg.ServiceName)
		if name == "" {
			name = "conduit"
		}
		r.Use(otelgin.Middleware(name))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	requireAuth := passthrough
	optionalAuth := passthrough
	if cfg.AuthMiddleware != nil {
		requireAuth = cfg.AuthMiddleware.RequireAuth()
		optionalAuth = cfg.AuthMiddleware.OptionalAuth()
	}

	api := r.Group("/api")

	// Auth (public)
	if cfg.AuthHandler != nil {
		api.POST("/users", cfg.AuthHandler.Register)
		api.POST("/users/login", cfg.AuthHandler.Login)
	}

	// User
	if cfg.UserHandler != nil {
		api.GET("/user", requireAuth, cfg.UserHandler.GetCurrentUser)
		api.PUT("/user", requireAuth, cfg.UserHandler.UpdateCurrentUser)
		api.GET("/profiles/:username", optionalAuth, cfg.UserHandler.GetProfile)
	}

	// Articles
	if cfg.ArticleHandler != nil {
		api.GET("/articles", optionalAuth, cfg.ArticleHandler.ListArticles)
		api.POST("/articles", requireAuth, cfg.ArticleHandler.CreateArticle)
		api.GET("/articles/:slug", optionalAuth, cfg.ArticleHandler.GetArticle)
		api.PUT("/articles/:slug", requireAuth, cfg.ArticleHandler.UpdateArticle)
		api.DELETE("/articles/:slug", requireAuth, cfg.ArticleHandler.DeleteArticle)
	}

	// Favorites
	if cfg.FavoriteHandler != nil {
		api.POST("/articles/:slug/favorite", requireAuth, cfg.FavoriteHandler.FavoriteArticle)
		api.DELETE("/articles/:slug/favorite", requireAuth, cfg.FavoriteHandler.UnfavoriteArticle)
	}

	return r
}

func passthrough(c *gin.Context) { c.Next() }
