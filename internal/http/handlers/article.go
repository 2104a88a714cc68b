package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/yungbote/conduit-backend/internal/domain"
	"github.com/yungbote/conduit-backend/internal/http/response"
	"github.com/yungbote/conduit-backend/internal/platform/ctxutil"
	"github.com/yungbote/conduit-backend/internal/services"
)

var errNoIdentity = errors.New("authentication required")

type ArticleHandler struct {
	articleService services.ArticleService
}

func NewArticleHandler(articleService services.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// GET /api/articles?author=&tag=&favorited=&limit=&offset=
func (ah *ArticleHandler) ListArticles(c *gin.Context) {
	params := types.ParseArticleListParams(c.Request.URL.Query())
	list, err := ah.articleService.List(c.Request.Context(), params, ctxutil.ViewerID(c.Request.Context()))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	out := make([]ArticleDTO, 0, len(list.Articles))
	for _, v := range list.Articles {
		out = append(out, toArticleDTO(v))
	}
	response.RespondOK(c, gin.H{
		"articles":      out,
		"articlesCount": list.TotalCount,
	})
}

// GET /api/articles/:slug
func (ah *ArticleHandler) GetArticle(c *gin.Context) {
	v, err := ah.articleService.Get(c.Request.Context(), c.Param("slug"), ctxutil.ViewerID(c.Request.Context()))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"article": toArticleDTO(v)})
}

// POST /api/articles
// body: {"article": {"title", "description", "body", "tagList"?}}
func (ah *ArticleHandler) CreateArticle(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req struct {
		Article struct {
			Title       string   `json:"title"`
			Description string   `json:"description"`
			Body        string   `json:"body"`
			TagList     []string `json:"tagList"`
		} `json:"article"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	v, err := ah.articleService.Create(c.Request.Context(), userID, services.ArticleInput{
		Title:       req.Article.Title,
		Description: req.Article.Description,
		Body:        req.Article.Body,
		TagList:     req.Article.TagList,
	})
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"article": toArticleDTO(v)})
}

// PUT /api/articles/:slug
func (ah *ArticleHandler) UpdateArticle(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req struct {
		Article struct {
			Title       *string   `json:"title"`
			Description *string   `json:"description"`
			Body        *string   `json:"body"`
			TagList     *[]string `json:"tagList"`
		} `json:"article"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	v, err := ah.articleService.Update(c.Request.Context(), userID, c.Param("slug"), services.ArticlePatch{
		Title:       req.Article.Title,
		Description: req.Article.Description,
		Body:        req.Article.Body,
		TagList:     req.Article.TagList,
	})
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"article": toArticleDTO(v)})
}

// DELETE /api/articles/:slug
func (ah *ArticleHandler) DeleteArticle(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := ah.articleService.Delete(c.Request.Context(), userID, c.Param("slug")); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{})
}

func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	id := ctxutil.ViewerID(c.Request.Context())
	if id == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", errNoIdentity)
		return uuid.Nil, false
	}
	return *id, true
}
