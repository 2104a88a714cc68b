package handlers

import (
	"time"

	types "github.com/yungbote/conduit-backend/internal/domain"
)

type ProfileDTO struct {
	Username string `json:"username"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
}

type UserDTO struct {
	Email    string `json:"email"`
	Token    string `json:"token"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
}

type ArticleDTO struct {
	Slug           string     `json:"slug"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Body           string     `json:"body"`
	TagList        []string   `json:"tagList"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	Favorited      bool       `json:"favorited"`
	FavoritesCount int        `json:"favoritesCount"`
	Author         ProfileDTO `json:"author"`
}

func toProfileDTO(u *types.User) ProfileDTO {
	if u == nil {
		return ProfileDTO{}
	}
	return ProfileDTO{Username: u.Username, Bio: u.Bio, Image: u.Image}
}

func toUserDTO(u *types.User, token string) UserDTO {
	return UserDTO{
		Email:    u.Email,
		Token:    token,
		Username: u.Username,
		Bio:      u.Bio,
		Image:    u.Image,
	}
}

func toArticleDTO(v types.ArticleView) ArticleDTO {
	a := v.Article
	return ArticleDTO{
		Slug:           a.Slug,
		Title:          a.Title,
		Description:    a.Description,
		Body:           a.Body,
		TagList:        a.Tags(),
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
		Favorited:      v.Favorited,
		FavoritesCount: a.FavoritesCount,
		Author:         toProfileDTO(a.Author),
	}
}
