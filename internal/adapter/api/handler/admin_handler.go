package handler

import (
	"github.com/labstack/echo/v4"

	"portfolia/internal/domain/entity"
	"portfolia/internal/usecase"
	"portfolia/pkg/response"
)

// AdminHandler groups the back-office operations that do not belong to a
// content domain: role assignment and desktop-notification settings.
type AdminHandler struct {
	authUseCase         *usecase.AuthUseCase
	notificationUseCase *usecase.NotificationUseCase
}

func NewAdminHandler(authUseCase *usecase.AuthUseCase, notificationUseCase *usecase.NotificationUseCase) *AdminHandler {
	return &AdminHandler{
		authUseCase:         authUseCase,
		notificationUseCase: notificationUseCase,
	}
}

type assignRoleRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Role   string `json:"role" validate:"required,oneof=admin user"`
}

func (h *AdminHandler) AssignRole(c echo.Context) error {
	var req assignRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.authUseCase.AssignRole(c.Request().Context(), req.UserID, entity.Role(req.Role)); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"user_id": req.UserID,
		"role":    req.Role,
	})
}

type permissionRequest struct {
	State string `json:"state" validate:"required,oneof=unrequested granted denied"`
}

// SetPermission records the browser's notification permission for this admin
// session.
func (h *AdminHandler) SetPermission(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req permissionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.notificationUseCase.SetPermission(c.Request().Context(), uid, req.State); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"state": req.State})
}

// ShouldPrompt tells the client whether to show the permission request. Once
// a session has answered, it is never asked again.
func (h *AdminHandler) ShouldPrompt(c echo.Context) error {
	uid := c.Get("uid").(string)

	return response.Success(c, map[string]bool{
		"should_prompt": h.notificationUseCase.ShouldPrompt(uid),
	})
}

func (h *AdminHandler) GetPreferences(c echo.Context) error {
	uid := c.Get("uid").(string)

	prefs, err := h.notificationUseCase.GetPreferences(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, prefs)
}

type preferencesRequest struct {
	Enabled      map[string]bool `json:"enabled"`
	SoundEnabled bool            `json:"sound_enabled"`
	SoundVolume  int             `json:"sound_volume" validate:"min=0,max=100"`
}

func (h *AdminHandler) UpdatePreferences(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req preferencesRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	prefs := &entity.NotificationPreferences{
		UserID:       uid,
		Enabled:      req.Enabled,
		SoundEnabled: req.SoundEnabled,
		SoundVolume:  req.SoundVolume,
	}
	if err := h.notificationUseCase.UpdatePreferences(c.Request().Context(), uid, prefs); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, prefs)
}
