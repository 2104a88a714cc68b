package domain

import (
	"github.com/yungbote/conduit-backend/internal/domain/content"
	"github.com/yungbote/conduit-backend/internal/domain/user"
)

type User = user.User

type Article = content.Article
type ArticleFavorite = content.ArticleFavorite
type ArticleView = content.ArticleView
type ArticleList = content.ArticleList

type ArticleListParams = content.ArticleListParams
type ArticlePredicate = content.ArticlePredicate
type CompiledArticleQuery = content.CompiledArticleQuery

const (
	PredicateAuthor = content.PredicateAuthor
	PredicateTag    = content.PredicateTag
	PredicateIDs    = content.PredicateIDs
	PredicateNone   = content.PredicateNone

	StageBeforeCount = content.StageBeforeCount
	StageAfterCount  = content.StageAfterCount
)

var ParseArticleListParams = content.ParseArticleListParams
