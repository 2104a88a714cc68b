package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/conduit-backend/internal/data/aggregates"
	domainagg "github.com/yungbote/conduit-backend/internal/domain/aggregates"
	"github.com/yungbote/conduit-backend/internal/observability"
	"github.com/yungbote/conduit-backend/internal/platform/logger"
	"github.com/yungbote/conduit-backend/internal/services"
)

type Services struct {
	Auth     services.AuthService
	User     services.UserService
	Article  services.ArticleService
	Favorite services.FavoriteService

	Compiler services.ArticleQueryCompiler
	Listing  services.ArticleListingService

	FavoritesAggregate domainagg.FavoritesAggregate
	ArticleAggregate   domainagg.ArticleAggregate
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")

	hooks := aggregates.NewLogHooks(log)
	if metrics != nil {
		hooks = aggregates.MultiHooks(hooks, metrics)
	}
	base := aggregates.BaseDeps{DB: db, Log: log, Hooks: hooks}

	favAgg := aggregates.NewFavoritesAggregate(aggregates.FavoritesAggregateDeps{
		Base:      base,
		Articles:  repos.Article,
		Favorites: repos.ArticleFavorite,
		Users:     repos.User,
	})
	artAgg := aggregates.NewArticleAggregate(aggregates.ArticleAggregateDeps{
		Base:            base,
		Articles:        repos.Article,
		Favorites:       repos.ArticleFavorite,
		Users:           repos.User,
		MaxSlugAttempts: cfg.SlugMaxAttempts,
	})

	auth := services.NewAuthService(log, repos.User, cfg.JWTSecretKey, cfg.AccessTokenTTL)
	compiler := services.NewArticleQueryCompiler(log, repos.User, repos.ArticleFavorite)
	listing := services.NewArticleListingService(log, repos.Article, repos.ArticleFavorite)

	return Services{
		Auth:               auth,
		User:               services.NewUserService(log, repos.User, auth),
		Article:            services.NewArticleService(log, repos.Article, repos.ArticleFavorite, compiler, listing, artAgg),
		Favorite:           services.NewFavoriteService(log, favAgg),
		Compiler:           compiler,
		Listing:            listing,
		FavoritesAggregate: favAgg,
		ArticleAggregate:   artAgg,
	}
}
