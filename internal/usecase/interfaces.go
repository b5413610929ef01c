package usecase

import (
	"context"

	"portfolia/internal/domain/entity"
)

// AuthClient abstracts the identity provider (Firebase Auth).
type AuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
}

// Pusher delivers server pushes to connected browser sessions. Satisfied by
// the websocket manager; tests substitute a recorder.
type Pusher interface {
	SendToUser(userID string, message []byte)
	SendToAdmins(message []byte)
}

// AIAssistant produces a support reply from a conversation transcript.
type AIAssistant interface {
	Reply(ctx context.Context, messages []*entity.ChatMessage) (string, error)
}
