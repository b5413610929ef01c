package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolia/internal/domain/entity"
	"portfolia/internal/infrastructure/querycache"
	"portfolia/internal/infrastructure/realtime"
	"portfolia/pkg/errors"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Q3 Growth & Strategy!":  "q3-growth-strategy",
		"Hello, World":           "hello-world",
		"  spaced   out  ":       "spaced-out",
		"already-a-slug":         "already-a-slug",
		"Ünïcode gets stripped":  "ncode-gets-stripped",
		"CAPS AND 123 numbers":   "caps-and-123-numbers",
		"trailing punctuation?!": "trailing-punctuation",
		"multi---hyphen -- runs": "multi-hyphen-runs",
	}
	for title, want := range cases {
		assert.Equal(t, want, Slugify(title), "Slugify(%q)", title)
	}

	// Deterministic: same input, same output, every time.
	for i := 0; i < 3; i++ {
		assert.Equal(t, "q3-growth-strategy", Slugify("Q3 Growth & Strategy!"))
	}
}

func articleFixture(t *testing.T) (*ArticleUseCase, *fakeArticleRepo, *fakeUserRepo, *fakePusher) {
	t.Helper()
	articleRepo := newFakeArticleRepo()
	userRepo := newFakeUserRepo()
	userRepo.roles["admin1"] = entity.RoleAdmin
	userRepo.users["admin1"] = &entity.User{ID: "admin1", FullName: "Site Owner"}
	userRepo.roles["reader"] = entity.RoleUser
	userRepo.users["reader"] = &entity.User{ID: "reader", FullName: "Regular Reader"}

	roleUC := NewRoleUseCase(userRepo)
	pusher := newFakePusher()
	notifier := NewNotificationUseCase(newFakeSettingsRepo(), roleUC, pusher)
	bus := realtime.NewBus()
	cache := querycache.New(time.Minute)

	uc := NewArticleUseCase(articleRepo, userRepo, roleUC, bus, cache, notifier)
	return uc, articleRepo, userRepo, pusher
}

func TestCreateArticleDerivesSlugAndReadTime(t *testing.T) {
	uc, _, _, _ := articleFixture(t)

	article, err := uc.CreateArticle(context.Background(), "admin1", ArticleInput{
		Title:     "Q3 Growth & Strategy!",
		Content:   "one two three four five",
		Published: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "q3-growth-strategy", article.Slug)
	assert.Equal(t, 1, article.ReadTime)
	assert.Equal(t, "admin1", article.AuthorID)
}

func TestCreateArticleSuffixesSlugCollisions(t *testing.T) {
	uc, _, _, _ := articleFixture(t)

	first, err := uc.CreateArticle(context.Background(), "admin1", ArticleInput{Title: "Same Title", Content: "x"})
	require.NoError(t, err)
	second, err := uc.CreateArticle(context.Background(), "admin1", ArticleInput{Title: "Same Title", Content: "x"})
	require.NoError(t, err)
	third, err := uc.CreateArticle(context.Background(), "admin1", ArticleInput{Title: "Same Title", Content: "x"})
	require.NoError(t, err)

	assert.Equal(t, "same-title", first.Slug)
	assert.Equal(t, "same-title-2", second.Slug)
	assert.Equal(t, "same-title-3", third.Slug)
}

func TestUpdateArticleKeepsSlugWhenTitleUnchanged(t *testing.T) {
	uc, _, _, _ := articleFixture(t)

	article, err := uc.CreateArticle(context.Background(), "admin1", ArticleInput{Title: "Stable Title", Content: "v1"})
	require.NoError(t, err)

	updated, err := uc.UpdateArticle(context.Background(), article.ID, ArticleInput{Title: "Stable Title", Content: "v2"})
	require.NoError(t, err)
	assert.Equal(t, "stable-title", updated.Slug)
}

func TestAddCommentRejectsGuests(t *testing.T) {
	uc, _, _, _ := articleFixture(t)

	article, err := uc.CreateArticle(context.Background(), "admin1", ArticleInput{Title: "T", Content: "c", Published: true})
	require.NoError(t, err)

	_, err = uc.AddComment(context.Background(), "", article.ID, "", "nice post")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestAddCommentRejectsEmptyContent(t *testing.T) {
	uc, _, _, _ := articleFixture(t)

	article, err := uc.CreateArticle(context.Background(), "admin1", ArticleInput{Title: "T", Content: "c", Published: true})
	require.NoError(t, err)

	_, err = uc.AddComment(context.Background(), "reader", article.ID, "", "   ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestAddCommentStampsAuthorName(t *testing.T) {
	uc, _, _, _ := articleFixture(t)

	article, err := uc.CreateArticle(context.Background(), "admin1", ArticleInput{Title: "T", Content: "c", Published: true})
	require.NoError(t, err)

	comment, err := uc.AddComment(context.Background(), "reader", article.ID, "", "great write-up")
	require.NoError(t, err)
	assert.Equal(t, "Regular Reader", comment.AuthorName)
	assert.Equal(t, article.ID, comment.ArticleID)
}

func TestToggleLikeRejectsGuests(t *testing.T) {
	uc, _, _, _ := articleFixture(t)

	article, err := uc.CreateArticle(context.Background(), "admin1", ArticleInput{Title: "T", Content: "c", Published: true})
	require.NoError(t, err)

	_, _, err = uc.ToggleLike(context.Background(), "", article.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestToggleLikeFlips(t *testing.T) {
	uc, _, _, _ := articleFixture(t)

	article, err := uc.CreateArticle(context.Background(), "admin1", ArticleInput{Title: "T", Content: "c", Published: true})
	require.NoError(t, err)

	liked, count, err := uc.ToggleLike(context.Background(), "reader", article.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 1, count)

	liked, count, err = uc.ToggleLike(context.Background(), "reader", article.ID)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, 0, count)
}

func TestReadTimeRoundsUp(t *testing.T) {
	assert.Equal(t, 1, readTime("one short sentence"))

	long := ""
	for i := 0; i < 450; i++ {
		long += "word "
	}
	assert.Equal(t, 3, readTime(long))
}
