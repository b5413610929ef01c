package handler

import (
	"github.com/labstack/echo/v4"

	"portfolia/internal/usecase"
	"portfolia/pkg/errors"
	"portfolia/pkg/response"
	"portfolia/pkg/utils"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type sendMessageRequest struct {
	Content string `json:"content" validate:"required,max=4000"`
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.chatUseCase.SendUserMessage(c.Request().Context(), uid, req.Content)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, message)
}

func (h *ChatHandler) MyConversation(c echo.Context) error {
	uid := c.Get("uid").(string)

	conv, err := h.chatUseCase.MyConversation(c.Request().Context(), uid)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return response.Success(c, nil)
		}
		return response.Error(c, err)
	}
	return response.Success(c, conv)
}

func (h *ChatHandler) GetMessages(c echo.Context) error {
	uid := c.Get("uid").(string)
	conversationID := c.Param("id")

	messages, err := h.chatUseCase.GetMessages(c.Request().Context(), uid, conversationID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, messages)
}

// RequestAssistant lets the visitor accept the AI offer on their own
// conversation.
func (h *ChatHandler) RequestAssistant(c echo.Context) error {
	uid := c.Get("uid").(string)
	conversationID := c.Param("id")

	message, err := h.chatUseCase.RequestAssistantReply(c.Request().Context(), uid, conversationID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, message)
}

func (h *ChatHandler) Close(c echo.Context) error {
	uid := c.Get("uid").(string)
	conversationID := c.Param("id")

	if err := h.chatUseCase.CloseConversation(c.Request().Context(), uid, conversationID); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "closed"})
}

// ListConversations is the admin inbox.
func (h *ChatHandler) ListConversations(c echo.Context) error {
	params := utils.GetPaginationParams(c)
	status := c.QueryParam("status")

	conversations, total, err := h.chatUseCase.ListConversations(
		c.Request().Context(), status, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, conversations, total, params.Page, params.PageSize)
}

func (h *ChatHandler) AdminReply(c echo.Context) error {
	uid := c.Get("uid").(string)
	conversationID := c.Param("id")

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.chatUseCase.SendAdminMessage(c.Request().Context(), uid, conversationID, req.Content)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, message)
}
