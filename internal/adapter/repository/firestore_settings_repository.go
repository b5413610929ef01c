package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"portfolia/internal/domain/entity"
	"portfolia/internal/domain/repository"
	"portfolia/pkg/errors"
)

type firestoreSettingsRepository struct {
	client *firestore.Client
}

func NewFirestoreSettingsRepository(client *firestore.Client) repository.SettingsRepository {
	return &firestoreSettingsRepository{
		client: client,
	}
}

// Load falls back to the defaults when no preference row exists yet.
func (r *firestoreSettingsRepository) Load(ctx context.Context, userID string) (*entity.NotificationPreferences, error) {
	doc, err := r.client.Collection("notification_preferences").Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return entity.DefaultNotificationPreferences(userID), nil
		}
		return nil, errors.Internal("Failed to load notification preferences", err)
	}

	var prefs entity.NotificationPreferences
	if err := doc.DataTo(&prefs); err != nil {
		return nil, errors.Internal("Failed to parse notification preferences", err)
	}
	if prefs.Enabled == nil {
		prefs.Enabled = entity.DefaultNotificationPreferences(userID).Enabled
	}
	return &prefs, nil
}

func (r *firestoreSettingsRepository) Save(ctx context.Context, prefs *entity.NotificationPreferences) error {
	prefs.UpdatedAt = time.Now()

	_, err := r.client.Collection("notification_preferences").Doc(prefs.UserID).Set(ctx, prefs)
	if err != nil {
		return errors.Internal("Failed to save notification preferences", err)
	}
	return nil
}
