package repository

import (
	"context"

	"portfolia/internal/domain/entity"
)

type DonationRepository interface {
	// Create enforces reference uniqueness: inserting a reference that is
	// already recorded returns the existing row and created=false.
	Create(ctx context.Context, donation *entity.Donation) (created bool, existing *entity.Donation, err error)
	GetByReference(ctx context.Context, reference string) (*entity.Donation, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Donation, int64, error)
}
