package usecase

import (
	"context"

	"portfolia/internal/domain/entity"
	"portfolia/internal/domain/repository"
	"portfolia/pkg/errors"
)

type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

type AuthUseCase struct {
	userRepo   repository.UserRepository
	authClient AuthClient
	roleUC     *RoleUseCase
}

func NewAuthUseCase(userRepo repository.UserRepository, authClient AuthClient, roleUC *RoleUseCase) *AuthUseCase {
	return &AuthUseCase{
		userRepo:   userRepo,
		authClient: authClient,
		roleUC:     roleUC,
	}
}

// Register creates the identity-provider account, the profile row, and the
// default user role. New signups are never admins.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	if _, err := uc.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, errors.Conflict("Email is already registered")
	}

	uid, err := uc.authClient.CreateUser(ctx, input.Email, input.Password, input.FullName)
	if err != nil {
		return nil, errors.BadRequest("Failed to create account", err)
	}

	user := &entity.User{
		ID:       uid,
		Email:    input.Email,
		FullName: input.FullName,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := uc.userRepo.SetRole(ctx, uid, entity.RoleUser); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *AuthUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

func (uc *AuthUseCase) UpdateProfile(ctx context.Context, userID string, fullName, bio, avatarURL string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.FullName = fullName
	user.Bio = bio
	user.AvatarURL = avatarURL

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// AssignRole is the admin action behind role management. The memoized role
// for the target session is dropped so the change takes effect immediately.
func (uc *AuthUseCase) AssignRole(ctx context.Context, targetUserID string, role entity.Role) error {
	if !role.Valid() || role == entity.RoleGuest {
		return errors.BadRequest("Role must be admin or user", nil)
	}

	if err := uc.userRepo.SetRole(ctx, targetUserID, role); err != nil {
		return err
	}

	uc.roleUC.Invalidate(targetUserID)
	return nil
}
