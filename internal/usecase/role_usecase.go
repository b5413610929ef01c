package usecase

import (
	"context"
	"sync"

	"portfolia/internal/domain/entity"
	"portfolia/internal/domain/repository"
	"portfolia/pkg/logger"
)

// RoleUseCase resolves a session's role once and memoizes it. Resolution is
// fail-closed: an unauthenticated session is guest, and any lookup failure or
// unexpected stored value degrades to the least privilege that still fits,
// never to admin.
type RoleUseCase struct {
	userRepo repository.UserRepository

	mu    sync.RWMutex
	cache map[string]entity.Role
}

func NewRoleUseCase(userRepo repository.UserRepository) *RoleUseCase {
	return &RoleUseCase{
		userRepo: userRepo,
		cache:    make(map[string]entity.Role),
	}
}

func (uc *RoleUseCase) ResolveRole(ctx context.Context, userID string) entity.Role {
	if userID == "" {
		return entity.RoleGuest
	}

	uc.mu.RLock()
	role, ok := uc.cache[userID]
	uc.mu.RUnlock()
	if ok {
		return role
	}

	role = uc.lookup(ctx, userID)

	uc.mu.Lock()
	uc.cache[userID] = role
	uc.mu.Unlock()
	return role
}

func (uc *RoleUseCase) lookup(ctx context.Context, userID string) entity.Role {
	role, err := uc.userRepo.GetRole(ctx, userID)
	if err != nil {
		logger.Warn("Role lookup failed for %s, treating as user: %v", userID, err)
		return entity.RoleUser
	}
	if !role.Valid() || role == entity.RoleGuest {
		// A stored guest or garbage value for an authenticated session
		// still means an authenticated non-admin.
		return entity.RoleUser
	}
	return role
}

// Invalidate drops the memoized role, forcing the next resolution to
// round-trip through the store. Called after an admin reassigns a role.
func (uc *RoleUseCase) Invalidate(userID string) {
	uc.mu.Lock()
	delete(uc.cache, userID)
	uc.mu.Unlock()
}

func (uc *RoleUseCase) IsAdmin(ctx context.Context, userID string) bool {
	return uc.ResolveRole(ctx, userID) == entity.RoleAdmin
}
