package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"portfolia/internal/domain/entity"
	"portfolia/internal/domain/repository"
	"portfolia/internal/infrastructure/querycache"
	"portfolia/internal/infrastructure/realtime"
	"portfolia/pkg/errors"
)

// Slugify derives a URL slug from a title: lowercase, whitespace to hyphens,
// everything else outside [a-z0-9-] stripped. Deterministic: the same title
// always yields the same slug.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r) || r == '-':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// readTime estimates minutes to read at ~200 words per minute, minimum 1.
func readTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + 199) / 200
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

type ArticleInput struct {
	Title     string
	Content   string
	Excerpt   string
	CoverURL  string
	Tags      []string
	Published bool
	Featured  bool
}

type ArticleUseCase struct {
	articleRepo repository.ArticleRepository
	userRepo    repository.UserRepository
	roleUC      *RoleUseCase
	bus         *realtime.Bus
	cache       *querycache.Cache
	notifier    *NotificationUseCase
}

func NewArticleUseCase(
	articleRepo repository.ArticleRepository,
	userRepo repository.UserRepository,
	roleUC *RoleUseCase,
	bus *realtime.Bus,
	cache *querycache.Cache,
	notifier *NotificationUseCase,
) *ArticleUseCase {
	return &ArticleUseCase{
		articleRepo: articleRepo,
		userRepo:    userRepo,
		roleUC:      roleUC,
		bus:         bus,
		cache:       cache,
		notifier:    notifier,
	}
}

// CreateArticle derives the slug at save time; collisions with a different
// article get a numeric suffix so the derivation stays unique.
func (uc *ArticleUseCase) CreateArticle(ctx context.Context, authorID string, input ArticleInput) (*entity.Article, error) {
	slug, err := uc.uniqueSlug(ctx, input.Title, "")
	if err != nil {
		return nil, err
	}

	article := &entity.Article{
		Title:     input.Title,
		Slug:      slug,
		Content:   input.Content,
		Excerpt:   input.Excerpt,
		CoverURL:  input.CoverURL,
		Tags:      input.Tags,
		Published: input.Published,
		Featured:  input.Featured,
		ReadTime:  readTime(input.Content),
		AuthorID:  authorID,
	}
	if err := uc.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}

	uc.publishArticle(realtime.EventInsert, article)
	return article, nil
}

func (uc *ArticleUseCase) UpdateArticle(ctx context.Context, id string, input ArticleInput) (*entity.Article, error) {
	article, err := uc.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != article.Title {
		slug, err := uc.uniqueSlug(ctx, input.Title, article.ID)
		if err != nil {
			return nil, err
		}
		article.Slug = slug
	}

	article.Title = input.Title
	article.Content = input.Content
	article.Excerpt = input.Excerpt
	article.CoverURL = input.CoverURL
	article.Tags = input.Tags
	article.Published = input.Published
	article.Featured = input.Featured
	article.ReadTime = readTime(input.Content)

	if err := uc.articleRepo.Update(ctx, article); err != nil {
		return nil, err
	}

	uc.publishArticle(realtime.EventUpdate, article)
	return article, nil
}

func (uc *ArticleUseCase) DeleteArticle(ctx context.Context, id string) error {
	article, err := uc.articleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.articleRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.bus.Publish(realtime.ChangeEvent{
		Event:        realtime.EventDelete,
		Table:        articlesTable,
		Old:          article,
		FilterValues: map[string]string{"slug": article.Slug, "article_id": article.ID},
	})
	return nil
}

func (uc *ArticleUseCase) uniqueSlug(ctx context.Context, title, excludeID string) (string, error) {
	base := Slugify(title)
	if base == "" {
		return "", errors.BadRequest("Title produces an empty slug", nil)
	}

	slug := base
	for i := 2; ; i++ {
		exists, err := uc.articleRepo.SlugExists(ctx, slug, excludeID)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

// List serves the public article index (published only) or the admin index
// (everything) through the query cache.
func (uc *ArticleUseCase) List(ctx context.Context, publishedOnly bool) ([]*entity.Article, error) {
	value, err := uc.cache.Read(ctx, articlesKey(publishedOnly), func(ctx context.Context) (interface{}, error) {
		articles, _, err := uc.articleRepo.List(ctx, repository.ArticleFilter{PublishedOnly: publishedOnly}, 0, 0)
		return articles, err
	})
	if err != nil {
		return nil, err
	}
	return value.([]*entity.Article), nil
}

func (uc *ArticleUseCase) GetBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	value, err := uc.cache.Read(ctx, articleKey(slug), func(ctx context.Context) (interface{}, error) {
		return uc.articleRepo.GetBySlug(ctx, slug)
	})
	if err != nil {
		return nil, err
	}
	return value.(*entity.Article), nil
}

// AddComment requires an authenticated session; guests are rejected before
// anything reaches the store.
func (uc *ArticleUseCase) AddComment(ctx context.Context, userID, articleID, parentID, content string) (*entity.Comment, error) {
	if uc.roleUC.ResolveRole(ctx, userID) == entity.RoleGuest {
		return nil, errors.Unauthorized("Sign in to comment", nil)
	}
	if strings.TrimSpace(content) == "" {
		return nil, errors.BadRequest("Comment cannot be empty", nil)
	}

	article, err := uc.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	author, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("Author", err)
	}

	comment := &entity.Comment{
		ArticleID:  articleID,
		ParentID:   parentID,
		AuthorID:   userID,
		AuthorName: author.FullName,
		Content:    content,
	}
	if err := uc.articleRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	uc.bus.Publish(realtime.ChangeEvent{
		Event:        realtime.EventInsert,
		Table:        commentsTable,
		New:          comment,
		FilterValues: map[string]string{"article_id": articleID},
	})

	uc.notifier.Dispatch(ctx, entity.NotificationEvent{
		Title:      "New Comment",
		Body:       fmt.Sprintf("%s commented on %q", author.FullName, article.Title),
		Type:       entity.NotifyComment,
		SenderName: author.FullName,
	})

	return comment, nil
}

func (uc *ArticleUseCase) ListComments(ctx context.Context, articleID string) ([]*entity.Comment, error) {
	value, err := uc.cache.Read(ctx, commentsKey(articleID), func(ctx context.Context) (interface{}, error) {
		return uc.articleRepo.ListComments(ctx, articleID)
	})
	if err != nil {
		return nil, err
	}
	return value.([]*entity.Comment), nil
}

func (uc *ArticleUseCase) DeleteComment(ctx context.Context, articleID, commentID string) error {
	if err := uc.articleRepo.DeleteComment(ctx, articleID, commentID); err != nil {
		return err
	}

	uc.bus.Publish(realtime.ChangeEvent{
		Event:        realtime.EventDelete,
		Table:        commentsTable,
		FilterValues: map[string]string{"article_id": articleID},
	})
	return nil
}

// ToggleLike flips the caller's like on an article and notifies admins of
// new likes.
func (uc *ArticleUseCase) ToggleLike(ctx context.Context, userID, articleID string) (bool, int, error) {
	if uc.roleUC.ResolveRole(ctx, userID) == entity.RoleGuest {
		return false, 0, errors.Unauthorized("Sign in to like articles", nil)
	}

	article, err := uc.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return false, 0, err
	}

	liked, count, err := uc.articleRepo.ToggleLike(ctx, articleID, userID)
	if err != nil {
		return false, 0, err
	}

	event := realtime.EventDelete
	if liked {
		event = realtime.EventInsert
	}
	uc.bus.Publish(realtime.ChangeEvent{
		Event:        event,
		Table:        likesTable,
		FilterValues: map[string]string{"article_id": articleID, "slug": article.Slug},
	})

	if liked {
		senderName := userID
		if user, err := uc.userRepo.GetByID(ctx, userID); err == nil {
			senderName = user.FullName
		}
		uc.notifier.Dispatch(ctx, entity.NotificationEvent{
			Title:      "New Like",
			Body:       fmt.Sprintf("%s liked %q", senderName, article.Title),
			Type:       entity.NotifyLike,
			SenderName: senderName,
		})
	}

	return liked, count, nil
}

func (uc *ArticleUseCase) publishArticle(event realtime.ChangeType, article *entity.Article) {
	uc.bus.Publish(realtime.ChangeEvent{
		Event:        event,
		Table:        articlesTable,
		New:          article,
		FilterValues: map[string]string{"slug": article.Slug, "article_id": article.ID},
	})
}
