package handler

import (
	"github.com/labstack/echo/v4"

	"portfolia/internal/usecase"
	"portfolia/pkg/response"
)

type ArticleHandler struct {
	articleUseCase *usecase.ArticleUseCase
}

func NewArticleHandler(articleUseCase *usecase.ArticleUseCase) *ArticleHandler {
	return &ArticleHandler{
		articleUseCase: articleUseCase,
	}
}

type articleRequest struct {
	Title     string   `json:"title" validate:"required,min=3,max=200"`
	Content   string   `json:"content" validate:"required"`
	Excerpt   string   `json:"excerpt" validate:"omitempty,max=500"`
	CoverURL  string   `json:"cover_url" validate:"omitempty,url"`
	Tags      []string `json:"tags"`
	Published bool     `json:"published"`
	Featured  bool     `json:"featured"`
}

func (r articleRequest) toInput() usecase.ArticleInput {
	return usecase.ArticleInput{
		Title:     r.Title,
		Content:   r.Content,
		Excerpt:   r.Excerpt,
		CoverURL:  r.CoverURL,
		Tags:      r.Tags,
		Published: r.Published,
		Featured:  r.Featured,
	}
}

// List serves published articles only. Drafts are visible through the admin
// listing.
func (h *ArticleHandler) List(c echo.Context) error {
	articles, err := h.articleUseCase.List(c.Request().Context(), true)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, articles)
}

// ListAll includes drafts; mounted behind the admin gate.
func (h *ArticleHandler) ListAll(c echo.Context) error {
	articles, err := h.articleUseCase.List(c.Request().Context(), false)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, articles)
}

func (h *ArticleHandler) GetBySlug(c echo.Context) error {
	article, err := h.articleUseCase.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, article)
}

func (h *ArticleHandler) Create(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	article, err := h.articleUseCase.CreateArticle(c.Request().Context(), uid, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, article)
}

func (h *ArticleHandler) Update(c echo.Context) error {
	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	article, err := h.articleUseCase.UpdateArticle(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, article)
}

func (h *ArticleHandler) Delete(c echo.Context) error {
	if err := h.articleUseCase.DeleteArticle(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "deleted"})
}

func (h *ArticleHandler) ListComments(c echo.Context) error {
	comments, err := h.articleUseCase.ListComments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, comments)
}

type commentRequest struct {
	Content  string `json:"content" validate:"required,max=2000"`
	ParentID string `json:"parent_id"`
}

func (h *ArticleHandler) AddComment(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	comment, err := h.articleUseCase.AddComment(c.Request().Context(), uid, c.Param("id"), req.ParentID, req.Content)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, comment)
}

func (h *ArticleHandler) DeleteComment(c echo.Context) error {
	if err := h.articleUseCase.DeleteComment(c.Request().Context(), c.Param("id"), c.Param("commentId")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "deleted"})
}

func (h *ArticleHandler) ToggleLike(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	liked, count, err := h.articleUseCase.ToggleLike(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{
		"liked":      liked,
		"like_count": count,
	})
}
