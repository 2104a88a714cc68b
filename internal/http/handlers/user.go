package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/conduit-backend/internal/http/response"
	"github.com/yungbote/conduit-backend/internal/platform/ctxutil"
	"github.com/yungbote/conduit-backend/internal/services"
)

type UserHandler struct {
	userService services.UserService
	authService services.AuthService
}

func NewUserHandler(userService services.UserService, authService services.AuthService) *UserHandler {
	return &UserHandler{userService: userService, authService: authService}
}

// GET /api/user
func (uh *UserHandler) GetCurrentUser(c *gin.Context) {
	me, err := uh.userService.GetMe(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"user": toUserDTO(me, currentToken(c))})
}

// PUT /api/user
// body: {"user": {"email"?, "username"?, "password"?, "bio"?, "image"?}}
func (uh *UserHandler) UpdateCurrentUser(c *gin.Context) {
	var req struct {
		User struct {
			Email    *string `json:"email"`
			Username *string `json:"username"`
			Password *string `json:"password"`
			Bio      *string `json:"bio"`
			Image    *string `json:"image"`
		} `json:"user"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	u, err := uh.userService.UpdateMe(c.Request.Context(), services.UpdateUserInput{
		Email:    req.User.Email,
		Username: req.User.Username,
		Password: req.User.Password,
		Bio:      req.User.Bio,
		Image:    req.User.Image,
	})
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	// Claims embed username/email, so a changed identity gets a fresh token.
	token := currentToken(c)
	if req.User.Email != nil || req.User.Username != nil {
		if fresh, err := uh.authService.IssueToken(u); err == nil {
			token = fresh
		}
	}
	response.RespondOK(c, gin.H{"user": toUserDTO(u, token)})
}

// GET /api/profiles/:username
func (uh *UserHandler) GetProfile(c *gin.Context) {
	p, err := uh.userService.GetProfile(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"profile": toProfileDTO(p)})
}

func currentToken(c *gin.Context) string {
	if rd := ctxutil.GetRequestData(c.Request.Context()); rd != nil {
		return rd.TokenString
	}
	return ""
}
