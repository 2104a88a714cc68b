package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/conduit-backend/internal/http/response"
	"github.com/yungbote/conduit-backend/internal/services"
)

type FavoriteHandler struct {
	favoriteService services.FavoriteService
}

func NewFavoriteHandler(favoriteService services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// POST /api/articles/:slug/favorite
func (fh *FavoriteHandler) FavoriteArticle(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	v, err := fh.favoriteService.Favorite(c.Request.Context(), userID, c.Param("slug"))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"article": toArticleDTO(v)})
}

// DELETE /api/articles/:slug/favorite
func (fh *FavoriteHandler) UnfavoriteArticle(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	v, err := fh.favoriteService.Unfavorite(c.Request.Context(), userID, c.Param("slug"))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"article": toArticleDTO(v)})
}
