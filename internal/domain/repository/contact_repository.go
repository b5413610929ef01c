package repository

import (
	"context"

	"portfolia/internal/domain/entity"
)

type ContactRepository interface {
	CreateMessage(ctx context.Context, msg *entity.ContactMessage) error
	ListMessages(ctx context.Context, limit, offset int) ([]*entity.ContactMessage, int64, error)
	MarkRead(ctx context.Context, id string) error

	CreateEmailLog(ctx context.Context, log *entity.EmailLog) error
	ListEmailLogs(ctx context.Context, limit, offset int) ([]*entity.EmailLog, int64, error)
}
