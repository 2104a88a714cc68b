package services

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/conduit-backend/internal/data/aggregates"
	"github.com/yungbote/conduit-backend/internal/data/repos"
	"github.com/yungbote/conduit-backend/internal/data/repos/testutil"
	types "github.com/yungbote/conduit-backend/internal/domain"
	"github.com/yungbote/conduit-backend/internal/platform/logger"
)

type testEnv struct {
	db        *gorm.DB
	users     repos.UserRepo
	articles  repos.ArticleRepo
	favorites repos.ArticleFavoriteRepo
	compiler  ArticleQueryCompiler
	listing   ArticleListingService
	articleSv ArticleService
	favSv     FavoriteService
	auth      AuthService
	userSv    UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	env := &testEnv{
		db:        db,
		users:     repos.NewUserRepo(db, log),
		articles:  repos.NewArticleRepo(db, log),
		favorites: repos.NewArticleFavoriteRepo(db, log),
	}
	base := aggregates.BaseDeps{DB: db, Log: log}
	favAgg := aggregates.NewFavoritesAggregate(aggregates.FavoritesAggregateDeps{
		Base:      base,
		Articles:  env.articles,
		Favorites: env.favorites,
		Users:     env.users,
	})
	artAgg := aggregates.NewArticleAggregate(aggregates.ArticleAggregateDeps{
		Base:      base,
		Articles:  env.articles,
		Favorites: env.favorites,
		Users:     env.users,
	})
	env.compiler = NewArticleQueryCompiler(log, env.users, env.favorites)
	env.listing = NewArticleListingService(log, env.articles, env.favorites)
	env.articleSv = NewArticleService(log, env.articles, env.favorites, env.compiler, env.listing, artAgg)
	env.favSv = NewFavoriteService(log, favAgg)
	env.auth = NewAuthService(log, env.users, "test-secret", time.Hour)
	env.userSv = NewUserService(log, env.users, env.auth)
	return env
}

func (e *testEnv) seedUser(t *testing.T, username string) *types.User {
	t.Helper()
	return testutil.SeedUser(t, context.Background(), e.db, username)
}

// seedArticles creates n articles one minute apart, oldest first.
func (e *testEnv) seedArticles(t *testing.T, author *types.User, n int, tags func(i int) []string) []*types.Article {
	t.Helper()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]*types.Article, 0, n)
	for i := 0; i < n; i++ {
		var tl []string
		if tags != nil {
			tl = tags(i)
		}
		out = append(out, testutil.SeedArticle(t, context.Background(), e.db, author.ID, "Article", tl, base.Add(time.Duration(i)*time.Minute)))
	}
	return out
}

func (e *testEnv) log(t *testing.T) *logger.Logger {
	t.Helper()
	return testutil.Logger(t)
}
