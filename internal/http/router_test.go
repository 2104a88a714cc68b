package http

import (
	"bytes"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/conduit-backend/internal/data/aggregates"
	"github.com/yungbote/conduit-backend/internal/data/repos"
	"github.com/yungbote/conduit-backend/internal/data/repos/testutil"
	httpH "github.com/yungbote/conduit-backend/internal/http/handlers"
	httpMW "github.com/yungbote/conduit-backend/internal/http/middleware"
	"github.com/yungbote/conduit-backend/internal/observability"
	"github.com/yungbote/conduit-backend/internal/services"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.DB(t)
	log := testutil.Logger(t)
	metrics := observability.NewMetrics()

	users := repos.NewUserRepo(db, log)
	articles := repos.NewArticleRepo(db, log)
	favorites := repos.NewArticleFavoriteRepo(db, log)
	base := aggregates.BaseDeps{DB: db, Log: log, Hooks: aggregates.MultiHooks(aggregates.NewLogHooks(log), metrics)}
	favAgg := aggregates.NewFavoritesAggregate(aggregates.FavoritesAggregateDeps{
		Base: base, Articles: articles, Favorites: favorites, Users: users,
	})
	artAgg := aggregates.NewArticleAggregate(aggregates.ArticleAggregateDeps{
		Base: base, Articles: articles, Favorites: favorites, Users: users,
	})

	authSv := services.NewAuthService(log, users, "router-secret", time.Hour)
	userSv := services.NewUserService(log, users, authSv)
	compiler := services.NewArticleQueryCompiler(log, users, favorites)
	listing := services.NewArticleListingService(log, articles, favorites)
	articleSv := services.NewArticleService(log, articles, favorites, compiler, listing, artAgg)
	favSv := services.NewFavoriteService(log, favAgg)

	return NewRouter(RouterConfig{
		Log:             log,
		Metrics:         metrics,
		AuthMiddleware:  httpMW.NewAuthMiddleware(log, authSv),
		AuthHandler:     httpH.NewAuthHandler(authSv),
		UserHandler:     httpH.NewUserHandler(userSv, authSv),
		ArticleHandler:  httpH.NewArticleHandler(articleSv),
		FavoriteHandler: httpH.NewFavoriteHandler(favSv),
		HealthHandler:   httpH.NewHealthHandler(db),
	})
}

func do(t *testing.T, r stdhttp.Handler, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var rdr *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rdr = bytes.NewReader(raw)
	} else {
		rdr = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var out map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("%s %s: decode: %v (%s)", method, path, err, rec.Body.String())
		}
	}
	return rec, out
}

func register(t *testing.T, r stdhttp.Handler, username string) string {
	t.Helper()
	rec, out := do(t, r, stdhttp.MethodPost, "/api/users", "", map[string]any{
		"user": map[string]any{"username": username, "email": username + "@example.com", "password": "hunter22"},
	})
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("register %s: want=201 got=%d (%s)", username, rec.Code, rec.Body.String())
	}
	user := out["user"].(map[string]any)
	if _, leaked := user["password"]; leaked {
		t.Fatalf("register: password must not be serialized")
	}
	return user["token"].(string)
}

func createArticle(t *testing.T, r stdhttp.Handler, token, title string, tags []string) string {
	t.Helper()
	rec, out := do(t, r, stdhttp.MethodPost, "/api/articles", token, map[string]any{
		"article": map[string]any{"title": title, "description": "d", "body": "b", "tagList": tags},
	})
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("create %q: want=201 got=%d (%s)", title, rec.Code, rec.Body.String())
	}
	return out["article"].(map[string]any)["slug"].(string)
}

func TestRouterArticleAndFavoriteFlow(t *testing.T) {
	r := newTestRouter(t)
	jake := register(t, r, "jake")
	jane := register(t, r, "jane")

	slug := createArticle(t, r, jake, "How to train your dragon", []string{"dragons"})
	createArticle(t, r, jake, "Second post", nil)
	createArticle(t, r, jane, "Jane writes", []string{"dragons"})

	rec, out := do(t, r, stdhttp.MethodGet, "/api/articles?author=jake", "", nil)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("list: want=200 got=%d", rec.Code)
	}
	if got := out["articlesCount"].(float64); got != 2 {
		t.Fatalf("articlesCount author=jake: want=2 got=%v", got)
	}

	rec, out = do(t, r, stdhttp.MethodPost, "/api/articles/"+slug+"/favorite", jane, nil)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("favorite: want=200 got=%d (%s)", rec.Code, rec.Body.String())
	}
	art := out["article"].(map[string]any)
	if art["favorited"] != true || art["favoritesCount"].(float64) != 1 {
		t.Fatalf("favorite: unexpected article %+v", art)
	}

	// Repeating the favorite is a no-op.
	_, out = do(t, r, stdhttp.MethodPost, "/api/articles/"+slug+"/favorite", jane, nil)
	if got := out["article"].(map[string]any)["favoritesCount"].(float64); got != 1 {
		t.Fatalf("favorite twice: want=1 got=%v", got)
	}

	// Favorited filter narrows the page but the count stays author-only.
	_, out = do(t, r, stdhttp.MethodGet, "/api/articles?author=jake&favorited=jane", jane, nil)
	if got := len(out["articles"].([]any)); got != 1 {
		t.Fatalf("favorited page: want=1 got=%d", got)
	}
	if got := out["articlesCount"].(float64); got != 2 {
		t.Fatalf("favorited count: want=2 got=%v", got)
	}

	_, out = do(t, r, stdhttp.MethodGet, "/api/articles/"+slug, jane, nil)
	if out["article"].(map[string]any)["favorited"] != true {
		t.Fatalf("get as jane: expected favorited=true")
	}
	_, out = do(t, r, stdhttp.MethodGet, "/api/articles/"+slug, "", nil)
	if out["article"].(map[string]any)["favorited"] != false {
		t.Fatalf("get anonymous: expected favorited=false")
	}

	rec, out = do(t, r, stdhttp.MethodDelete, "/api/articles/"+slug+"/favorite", jane, nil)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("unfavorite: want=200 got=%d", rec.Code)
	}
	art = out["article"].(map[string]any)
	if art["favorited"] != false || art["favoritesCount"].(float64) != 0 {
		t.Fatalf("unfavorite: unexpected article %+v", art)
	}
}

func TestRouterAuthAndErrors(t *testing.T) {
	r := newTestRouter(t)
	jake := register(t, r, "jake")
	jane := register(t, r, "jane")
	slug := createArticle(t, r, jake, "Owned", nil)

	if rec, _ := do(t, r, stdhttp.MethodPost, "/api/articles", "", map[string]any{"article": map[string]any{"title": "x"}}); rec.Code != stdhttp.StatusUnauthorized {
		t.Fatalf("create anonymous: want=401 got=%d", rec.Code)
	}
	if rec, _ := do(t, r, stdhttp.MethodGet, "/api/articles", "garbage", nil); rec.Code != stdhttp.StatusUnauthorized {
		t.Fatalf("list with bad token: want=401 got=%d", rec.Code)
	}
	if rec, _ := do(t, r, stdhttp.MethodGet, "/api/articles/missing-slug", "", nil); rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("get missing: want=404 got=%d", rec.Code)
	}
	if rec, _ := do(t, r, stdhttp.MethodDelete, "/api/articles/"+slug, jane, nil); rec.Code != stdhttp.StatusForbidden {
		t.Fatalf("delete by non-author: want=403 got=%d", rec.Code)
	}
	if rec, _ := do(t, r, stdhttp.MethodPost, "/api/articles/missing-slug/favorite", jane, nil); rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("favorite missing: want=404 got=%d", rec.Code)
	}

	rec, out := do(t, r, stdhttp.MethodPost, "/api/users", "", map[string]any{
		"user": map[string]any{"username": "jake", "email": "other@example.com", "password": "pw123456"},
	})
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("register taken: want=422 got=%d", rec.Code)
	}
	if out["error"] == nil {
		t.Fatalf("register taken: missing error envelope")
	}

	rec, out = do(t, r, stdhttp.MethodGet, "/api/user", jake, nil)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("current user: want=200 got=%d", rec.Code)
	}
	if got := out["user"].(map[string]any)["token"]; got != jake {
		t.Fatalf("current user token: want=%q got=%v", jake, got)
	}

	rec, out = do(t, r, stdhttp.MethodGet, "/api/profiles/jane", "", nil)
	if rec.Code != stdhttp.StatusOK || out["profile"].(map[string]any)["username"] != "jane" {
		t.Fatalf("profile: unexpected %d %v", rec.Code, out)
	}
}

func TestRouterHealthAndMetrics(t *testing.T) {
	r := newTestRouter(t)
	rec, _ := do(t, r, stdhttp.MethodGet, "/healthcheck", "", nil)
	if rec.Code != stdhttp.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("healthcheck: want=200 ok got=%d %q", rec.Code, rec.Body.String())
	}
	rec, _ = do(t, r, stdhttp.MethodGet, "/metrics", "", nil)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("metrics: want=200 got=%d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "conduit_api_requests_total") {
		t.Fatalf("metrics: expected api request counter in exposition")
	}
}
