package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolia/internal/domain/entity"
)

func TestResolveRoleGuestWithoutSession(t *testing.T) {
	uc := NewRoleUseCase(newFakeUserRepo())

	assert.Equal(t, entity.RoleGuest, uc.ResolveRole(context.Background(), ""))
}

func TestResolveRoleFailsClosedOnLookupError(t *testing.T) {
	repo := newFakeUserRepo()
	repo.roleErr = errors.New("firestore unavailable")
	uc := NewRoleUseCase(repo)

	// An authenticated session whose role cannot be read is a user, never
	// an admin.
	assert.Equal(t, entity.RoleUser, uc.ResolveRole(context.Background(), "u1"))
	assert.False(t, uc.IsAdmin(context.Background(), "u1"))
}

func TestResolveRoleNormalizesStoredGarbage(t *testing.T) {
	repo := newFakeUserRepo()
	repo.roles["u1"] = entity.Role("superuser")
	repo.roles["u2"] = entity.RoleGuest
	uc := NewRoleUseCase(repo)

	assert.Equal(t, entity.RoleUser, uc.ResolveRole(context.Background(), "u1"))
	assert.Equal(t, entity.RoleUser, uc.ResolveRole(context.Background(), "u2"))
}

func TestResolveRoleMemoizes(t *testing.T) {
	repo := newFakeUserRepo()
	repo.roles["admin1"] = entity.RoleAdmin
	uc := NewRoleUseCase(repo)

	assert.Equal(t, entity.RoleAdmin, uc.ResolveRole(context.Background(), "admin1"))

	// A store-side change is not visible until the memo is invalidated.
	repo.mu.Lock()
	repo.roles["admin1"] = entity.RoleUser
	repo.mu.Unlock()
	assert.Equal(t, entity.RoleAdmin, uc.ResolveRole(context.Background(), "admin1"))

	uc.Invalidate("admin1")
	assert.Equal(t, entity.RoleUser, uc.ResolveRole(context.Background(), "admin1"))
}
