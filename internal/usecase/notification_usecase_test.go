package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolia/internal/domain/entity"
)

func notificationFixture(t *testing.T) (*NotificationUseCase, *fakeUserRepo, *fakeSettingsRepo, *fakePusher) {
	t.Helper()
	userRepo := newFakeUserRepo()
	userRepo.roles["admin1"] = entity.RoleAdmin
	settingsRepo := newFakeSettingsRepo()
	pusher := newFakePusher()
	uc := NewNotificationUseCase(settingsRepo, NewRoleUseCase(userRepo), pusher)
	return uc, userRepo, settingsRepo, pusher
}

func TestSetPermissionRejectsNonAdmin(t *testing.T) {
	uc, userRepo, _, _ := notificationFixture(t)
	userRepo.roles["visitor"] = entity.RoleUser

	err := uc.SetPermission(context.Background(), "visitor", PermissionGranted)
	assert.Error(t, err)
}

func TestSetPermissionRejectsUnknownState(t *testing.T) {
	uc, _, _, _ := notificationFixture(t)

	err := uc.SetPermission(context.Background(), "admin1", "maybe")
	assert.Error(t, err)
}

func TestShouldPromptOnlyWhenUnrequested(t *testing.T) {
	uc, _, _, _ := notificationFixture(t)

	// New session: never asked.
	assert.True(t, uc.ShouldPrompt("admin1"))

	require.NoError(t, uc.SetPermission(context.Background(), "admin1", PermissionDenied))
	assert.False(t, uc.ShouldPrompt("admin1"), "a denied session must not be re-prompted")

	require.NoError(t, uc.SetPermission(context.Background(), "admin1", PermissionGranted))
	assert.False(t, uc.ShouldPrompt("admin1"))

	uc.ClearSession("admin1")
	assert.True(t, uc.ShouldPrompt("admin1"), "a fresh session starts over")
}

func TestDispatchReachesGrantedAdmin(t *testing.T) {
	uc, _, _, pusher := notificationFixture(t)
	require.NoError(t, uc.SetPermission(context.Background(), "admin1", PermissionGranted))

	uc.Dispatch(context.Background(), entity.NotificationEvent{
		Title: "New Chat Message",
		Body:  "hello",
		Type:  entity.NotifyChat,
	})

	sent := pusher.sentTo("admin1")
	require.Len(t, sent, 1)

	var payload notificationPayload
	require.NoError(t, json.Unmarshal(sent[0], &payload))
	assert.Equal(t, "notification", payload.Kind)
	assert.Equal(t, "New Chat Message", payload.Notification.Title)
	assert.Equal(t, "/chat", payload.Route)
	assert.True(t, payload.SoundEnabled)
}

func TestDispatchSkipsWithoutGrant(t *testing.T) {
	uc, _, _, pusher := notificationFixture(t)
	require.NoError(t, uc.SetPermission(context.Background(), "admin1", PermissionDenied))

	uc.Dispatch(context.Background(), entity.NotificationEvent{Type: entity.NotifyChat})

	assert.Empty(t, pusher.sentTo("admin1"))
}

func TestDispatchHonorsTypePreference(t *testing.T) {
	uc, _, settingsRepo, pusher := notificationFixture(t)
	require.NoError(t, uc.SetPermission(context.Background(), "admin1", PermissionGranted))

	prefs := entity.DefaultNotificationPreferences("admin1")
	prefs.Enabled[entity.NotifyLike] = false
	require.NoError(t, settingsRepo.Save(context.Background(), prefs))

	uc.Dispatch(context.Background(), entity.NotificationEvent{Type: entity.NotifyLike})
	assert.Empty(t, pusher.sentTo("admin1"))

	uc.Dispatch(context.Background(), entity.NotificationEvent{Type: entity.NotifyComment})
	assert.Len(t, pusher.sentTo("admin1"), 1)
}

func TestDispatchSilentOnPreferenceLoadFailure(t *testing.T) {
	uc, _, settingsRepo, pusher := notificationFixture(t)
	require.NoError(t, uc.SetPermission(context.Background(), "admin1", PermissionGranted))

	settingsRepo.loadErr = errors.New("store down")

	assert.NotPanics(t, func() {
		uc.Dispatch(context.Background(), entity.NotificationEvent{Type: entity.NotifyChat})
	})
	assert.Empty(t, pusher.sentTo("admin1"))
}

func TestDispatchRechecksRoleAtDelivery(t *testing.T) {
	uc, userRepo, _, pusher := notificationFixture(t)
	roleUC := uc.roleUC
	require.NoError(t, uc.SetPermission(context.Background(), "admin1", PermissionGranted))

	// Demote after the grant and drop the memoized role.
	userRepo.mu.Lock()
	userRepo.roles["admin1"] = entity.RoleUser
	userRepo.mu.Unlock()
	roleUC.Invalidate("admin1")

	uc.Dispatch(context.Background(), entity.NotificationEvent{Type: entity.NotifyChat})
	assert.Empty(t, pusher.sentTo("admin1"))
}

func TestDispatchRepeatsWithoutDeduplication(t *testing.T) {
	uc, _, _, pusher := notificationFixture(t)
	require.NoError(t, uc.SetPermission(context.Background(), "admin1", PermissionGranted))

	event := entity.NotificationEvent{Title: "New Chat Message", Type: entity.NotifyChat}
	uc.Dispatch(context.Background(), event)
	uc.Dispatch(context.Background(), event)
	uc.Dispatch(context.Background(), event)

	assert.Len(t, pusher.sentTo("admin1"), 3)
}

func TestUpdatePreferencesValidatesVolume(t *testing.T) {
	uc, _, _, _ := notificationFixture(t)

	prefs := entity.DefaultNotificationPreferences("admin1")
	prefs.SoundVolume = 150
	assert.Error(t, uc.UpdatePreferences(context.Background(), "admin1", prefs))

	prefs.SoundVolume = 70
	assert.NoError(t, uc.UpdatePreferences(context.Background(), "admin1", prefs))
}
