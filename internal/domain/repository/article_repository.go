package repository

import (
	"context"

	"portfolia/internal/domain/entity"
)

type ArticleFilter struct {
	PublishedOnly bool
	FeaturedOnly  bool
	Tag           string
}

type ArticleRepository interface {
	Create(ctx context.Context, article *entity.Article) error
	GetByID(ctx context.Context, id string) (*entity.Article, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Article, error)
	List(ctx context.Context, filter ArticleFilter, limit, offset int) ([]*entity.Article, int64, error)
	Update(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, id string) error

	// SlugExists reports whether any article other than excludeID already
	// uses the slug.
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)

	CreateComment(ctx context.Context, comment *entity.Comment) error
	ListComments(ctx context.Context, articleID string) ([]*entity.Comment, error)
	DeleteComment(ctx context.Context, articleID, commentID string) error

	// ToggleLike flips the (article, user) like and returns the resulting
	// liked state plus the new like count.
	ToggleLike(ctx context.Context, articleID, userID string) (bool, int, error)
	CountLikes(ctx context.Context, articleID string) (int, error)
}
