package handler

import (
	"github.com/labstack/echo/v4"

	"portfolia/internal/usecase"
	"portfolia/pkg/response"
	"portfolia/pkg/utils"
)

type ContactHandler struct {
	contactUseCase *usecase.ContactUseCase
}

func NewContactHandler(contactUseCase *usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{
		contactUseCase: contactUseCase,
	}
}

type contactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Body    string `json:"body" validate:"required,max=5000"`
}

func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.contactUseCase.Submit(c.Request().Context(), c.RealIP(), usecase.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, message)
}

func (h *ContactHandler) ListMessages(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	messages, total, err := h.contactUseCase.ListMessages(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, messages, total, params.Page, params.PageSize)
}

func (h *ContactHandler) MarkRead(c echo.Context) error {
	if err := h.contactUseCase.MarkRead(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "read"})
}

func (h *ContactHandler) ListEmailLogs(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	logs, total, err := h.contactUseCase.ListEmailLogs(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, logs, total, params.Page, params.PageSize)
}
