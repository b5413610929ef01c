package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"portfolia/internal/domain/entity"
	"portfolia/internal/domain/repository"
	"portfolia/pkg/errors"
)

type firestoreArticleRepository struct {
	client *firestore.Client
}

func NewFirestoreArticleRepository(client *firestore.Client) repository.ArticleRepository {
	return &firestoreArticleRepository{
		client: client,
	}
}

func (r *firestoreArticleRepository) Create(ctx context.Context, article *entity.Article) error {
	if article.ID == "" {
		article.ID = uuid.New().String()
	}

	now := time.Now()
	article.CreatedAt = now
	article.UpdatedAt = now

	_, err := r.client.Collection("articles").Doc(article.ID).Set(ctx, article)
	if err != nil {
		return errors.Internal("Failed to create article", err)
	}

	return nil
}

func (r *firestoreArticleRepository) GetByID(ctx context.Context, id string) (*entity.Article, error) {
	doc, err := r.client.Collection("articles").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Article", err)
		}
		return nil, errors.Internal("Failed to get article", err)
	}

	var article entity.Article
	if err := doc.DataTo(&article); err != nil {
		return nil, errors.Internal("Failed to parse article data", err)
	}
	return &article, nil
}

func (r *firestoreArticleRepository) GetBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	iter := r.client.Collection("articles").Where("slug", "==", slug).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Article", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query article by slug", err)
	}

	var article entity.Article
	if err := doc.DataTo(&article); err != nil {
		return nil, errors.Internal("Failed to parse article data", err)
	}
	return &article, nil
}

func (r *firestoreArticleRepository) List(ctx context.Context, filter repository.ArticleFilter, limit, offset int) ([]*entity.Article, int64, error) {
	query := r.client.Collection("articles").Query
	if filter.PublishedOnly {
		query = query.Where("published", "==", true)
	}
	if filter.FeaturedOnly {
		query = query.Where("featured", "==", true)
	}
	if filter.Tag != "" {
		query = query.Where("tags", "array-contains", filter.Tag)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count articles", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var articles []*entity.Article
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate articles", err)
		}

		var article entity.Article
		if err := doc.DataTo(&article); err != nil {
			return nil, 0, errors.Internal("Failed to parse article data", err)
		}
		articles = append(articles, &article)
	}

	return articles, total, nil
}

func (r *firestoreArticleRepository) Update(ctx context.Context, article *entity.Article) error {
	article.UpdatedAt = time.Now()

	_, err := r.client.Collection("articles").Doc(article.ID).Set(ctx, article)
	if err != nil {
		return errors.Internal("Failed to update article", err)
	}

	return nil
}

func (r *firestoreArticleRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("articles").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete article", err)
	}
	return nil
}

func (r *firestoreArticleRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	iter := r.client.Collection("articles").Where("slug", "==", slug).Documents(ctx)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return false, nil
		}
		if err != nil {
			return false, errors.Internal("Failed to query slug", err)
		}
		if doc.Ref.ID != excludeID {
			return true, nil
		}
	}
}

func (r *firestoreArticleRepository) CreateComment(ctx context.Context, comment *entity.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	comment.CreatedAt = time.Now()

	_, err := r.client.Collection("articles").Doc(comment.ArticleID).
		Collection("comments").Doc(comment.ID).Set(ctx, comment)
	if err != nil {
		return errors.Internal("Failed to create comment", err)
	}

	return nil
}

func (r *firestoreArticleRepository) ListComments(ctx context.Context, articleID string) ([]*entity.Comment, error) {
	iter := r.client.Collection("articles").Doc(articleID).
		Collection("comments").OrderBy("createdAt", firestore.Asc).Documents(ctx)

	var comments []*entity.Comment
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate comments", err)
		}

		var comment entity.Comment
		if err := doc.DataTo(&comment); err != nil {
			return nil, errors.Internal("Failed to parse comment data", err)
		}
		comments = append(comments, &comment)
	}

	return comments, nil
}

func (r *firestoreArticleRepository) DeleteComment(ctx context.Context, articleID, commentID string) error {
	_, err := r.client.Collection("articles").Doc(articleID).
		Collection("comments").Doc(commentID).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete comment", err)
	}
	return nil
}

// ToggleLike stores likes under a deterministic doc ID so the toggle is a
// create-or-delete, never a duplicate.
func (r *firestoreArticleRepository) ToggleLike(ctx context.Context, articleID, userID string) (bool, int, error) {
	likeRef := r.client.Collection("articles").Doc(articleID).
		Collection("likes").Doc(userID)

	liked := false
	_, err := likeRef.Get(ctx)
	switch {
	case err == nil:
		if _, err := likeRef.Delete(ctx); err != nil {
			return false, 0, errors.Internal("Failed to remove like", err)
		}
	case status.Code(err) == codes.NotFound:
		like := entity.ArticleLike{
			ID:        userID,
			ArticleID: articleID,
			UserID:    userID,
			CreatedAt: time.Now(),
		}
		if _, err := likeRef.Set(ctx, like); err != nil {
			return false, 0, errors.Internal("Failed to add like", err)
		}
		liked = true
	default:
		return false, 0, errors.Internal("Failed to read like", err)
	}

	count, err := r.CountLikes(ctx, articleID)
	if err != nil {
		return liked, 0, err
	}
	return liked, count, nil
}

func (r *firestoreArticleRepository) CountLikes(ctx context.Context, articleID string) (int, error) {
	docs, err := r.client.Collection("articles").Doc(articleID).
		Collection("likes").Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count likes", err)
	}
	return len(docs), nil
}
