package repository

import (
	"context"

	"portfolia/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error

	// Role rows live in their own collection; GetRole returns NOT_FOUND
	// when no row exists for the user.
	GetRole(ctx context.Context, userID string) (entity.Role, error)
	SetRole(ctx context.Context, userID string, role entity.Role) error
}
