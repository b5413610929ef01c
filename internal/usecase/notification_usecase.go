package usecase

import (
	"context"
	"encoding/json"
	"sync"

	"portfolia/internal/domain/entity"
	"portfolia/internal/domain/repository"
	"portfolia/pkg/errors"
	"portfolia/pkg/logger"
)

// Desktop-notification permission states reported by the browser.
const (
	PermissionUnrequested = "unrequested"
	PermissionGranted     = "granted"
	PermissionDenied      = "denied"
)

// Click destinations per notification type.
var notificationRoutes = map[string]string{
	entity.NotifyChat:    "/chat",
	entity.NotifyEmail:   "/admin",
	entity.NotifyComment: "/admin",
	entity.NotifyLike:    "/admin",
}

// NotificationUseCase converts qualifying events into pushes for admin
// sessions. Every precondition failure is a silent no-op: end users must
// never see admin-directed notifications, and a broken notification must
// never break the flow that raised it.
type NotificationUseCase struct {
	settingsRepo repository.SettingsRepository
	roleUC       *RoleUseCase
	pusher       Pusher

	mu          sync.RWMutex
	permissions map[string]string // admin userID -> permission state
}

func NewNotificationUseCase(settingsRepo repository.SettingsRepository, roleUC *RoleUseCase, pusher Pusher) *NotificationUseCase {
	return &NotificationUseCase{
		settingsRepo: settingsRepo,
		roleUC:       roleUC,
		pusher:       pusher,
		permissions:  make(map[string]string),
	}
}

// SetPermission records the browser-reported permission state for a session.
// Only admins are tracked; anyone else is ignored.
func (uc *NotificationUseCase) SetPermission(ctx context.Context, userID, state string) error {
	if state != PermissionUnrequested && state != PermissionGranted && state != PermissionDenied {
		return errors.BadRequest("Unknown permission state", nil)
	}
	if !uc.roleUC.IsAdmin(ctx, userID) {
		return errors.Forbidden("Admin privileges required", nil)
	}

	uc.mu.Lock()
	uc.permissions[userID] = state
	uc.mu.Unlock()
	return nil
}

// ShouldPrompt reports whether the client should ask for permission: only
// when it has never been requested. A denied state is never re-prompted.
func (uc *NotificationUseCase) ShouldPrompt(userID string) bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	state, ok := uc.permissions[userID]
	return !ok || state == PermissionUnrequested
}

// ClearSession forgets a session's permission state on disconnect.
func (uc *NotificationUseCase) ClearSession(userID string) {
	uc.mu.Lock()
	delete(uc.permissions, userID)
	uc.mu.Unlock()
}

type notificationPayload struct {
	Kind         string                   `json:"kind"`
	Notification entity.NotificationEvent `json:"notification"`
	Route        string                   `json:"route"`
	SoundEnabled bool                     `json:"sound_enabled"`
	SoundVolume  int                      `json:"sound_volume"`
}

// Dispatch pushes the event to every tracked admin session that holds
// granted permission and has the event's type enabled. No de-duplication and
// no rate limiting: repeated events produce repeated notifications.
func (uc *NotificationUseCase) Dispatch(ctx context.Context, event entity.NotificationEvent) {
	uc.mu.RLock()
	granted := make([]string, 0, len(uc.permissions))
	for userID, state := range uc.permissions {
		if state == PermissionGranted {
			granted = append(granted, userID)
		}
	}
	uc.mu.RUnlock()

	for _, userID := range granted {
		// Role is re-checked at dispatch: a session whose role was
		// revoked after registering must not keep receiving.
		if !uc.roleUC.IsAdmin(ctx, userID) {
			continue
		}

		prefs, err := uc.settingsRepo.Load(ctx, userID)
		if err != nil {
			logger.Warn("Notification preferences load failed for %s: %v", userID, err)
			continue
		}
		if !prefs.EnabledFor(event.Type) {
			continue
		}

		payload := notificationPayload{
			Kind:         "notification",
			Notification: event,
			Route:        notificationRoutes[event.Type],
			SoundEnabled: prefs.SoundEnabled,
			SoundVolume:  prefs.SoundVolume,
		}
		raw, err := json.Marshal(payload)
		if err != nil {
			continue
		}
		uc.pusher.SendToUser(userID, raw)
	}
}

func (uc *NotificationUseCase) GetPreferences(ctx context.Context, userID string) (*entity.NotificationPreferences, error) {
	return uc.settingsRepo.Load(ctx, userID)
}

func (uc *NotificationUseCase) UpdatePreferences(ctx context.Context, userID string, prefs *entity.NotificationPreferences) error {
	if prefs.SoundVolume < 0 || prefs.SoundVolume > 100 {
		return errors.BadRequest("Sound volume must be between 0 and 100", nil)
	}

	prefs.UserID = userID
	if prefs.Enabled == nil {
		prefs.Enabled = entity.DefaultNotificationPreferences(userID).Enabled
	}
	return uc.settingsRepo.Save(ctx, prefs)
}
