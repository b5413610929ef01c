package entity

import "time"

// Notification event types an admin can subscribe to.
const (
	NotifyChat    = "chat"
	NotifyEmail   = "email"
	NotifyComment = "comment"
	NotifyLike    = "like"
)

// NotificationPreferences gate admin desktop notifications. Absent settings
// fall back to DefaultNotificationPreferences.
type NotificationPreferences struct {
	UserID       string          `json:"user_id" firestore:"userId"`
	Enabled      map[string]bool `json:"enabled" firestore:"enabled"`
	SoundEnabled bool            `json:"sound_enabled" firestore:"soundEnabled"`
	SoundVolume  int             `json:"sound_volume" firestore:"soundVolume"` // 0-100
	UpdatedAt    time.Time       `json:"updated_at" firestore:"updatedAt"`
}

func DefaultNotificationPreferences(userID string) *NotificationPreferences {
	return &NotificationPreferences{
		UserID: userID,
		Enabled: map[string]bool{
			NotifyChat:    true,
			NotifyEmail:   true,
			NotifyComment: true,
			NotifyLike:    true,
		},
		SoundEnabled: true,
		SoundVolume:  70,
	}
}

// EnabledFor treats unknown types as disabled.
func (p *NotificationPreferences) EnabledFor(notifyType string) bool {
	if p == nil || p.Enabled == nil {
		return false
	}
	return p.Enabled[notifyType]
}

// NotificationEvent is the payload pushed to a granted admin session.
type NotificationEvent struct {
	Title      string `json:"title"`
	Body       string `json:"body"`
	Type       string `json:"type"`
	SenderName string `json:"sender_name,omitempty"`
}
