package repository

import (
	"context"

	"portfolia/internal/domain/entity"
)

type ChatRepository interface {
	CreateConversation(ctx context.Context, conv *entity.Conversation) error
	GetConversation(ctx context.Context, id string) (*entity.Conversation, error)
	GetConversationByUser(ctx context.Context, userID string) (*entity.Conversation, error)
	ListConversations(ctx context.Context, status string, limit, offset int) ([]*entity.Conversation, int64, error)
	UpdateConversation(ctx context.Context, conv *entity.Conversation) error

	CreateMessage(ctx context.Context, message *entity.ChatMessage) error
	ListMessages(ctx context.Context, conversationID string, limit, offset int) ([]*entity.ChatMessage, int64, error)
}
