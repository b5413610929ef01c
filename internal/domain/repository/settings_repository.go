package repository

import (
	"context"

	"portfolia/internal/domain/entity"
)

// SettingsRepository stores per-admin notification preferences. Load returns
// the defaults when no row exists, so callers never see a nil preference set.
type SettingsRepository interface {
	Load(ctx context.Context, userID string) (*entity.NotificationPreferences, error)
	Save(ctx context.Context, prefs *entity.NotificationPreferences) error
}
