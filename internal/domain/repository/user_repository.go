// Package repository defines the persistence interfaces of the domain layer.
// Concrete implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/entity"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/errors"
)

// Sentinel errors returned by repositories when a lookup finds nothing.
// Use cases translate these into the user-facing error taxonomy.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrStoreNotFound   = errors.New("store not found")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
)

// UserRepository persists and retrieves users.
type UserRepository interface {
	// Create persists a new user. Fails with the login-conflict domain error
	// if the login identifier is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by id, or ErrUserNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByLogin retrieves a user by login identifier, or ErrUserNotFound.
	FindByLogin(ctx context.Context, login string) (*entity.User, error)
}
