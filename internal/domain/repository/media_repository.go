package repository

import (
	"context"

	"portfolia/internal/domain/entity"
)

type MediaRepository interface {
	Create(ctx context.Context, file *entity.MediaFile) error
	List(ctx context.Context, limit, offset int) ([]*entity.MediaFile, int64, error)
	Delete(ctx context.Context, id string) error
}
