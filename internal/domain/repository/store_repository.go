package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/entity"
)

// StoreRepository persists and retrieves stores.
type StoreRepository interface {
	// Create persists a new store.
	Create(ctx context.Context, store *entity.Store) error

	// FindByID retrieves a store by id, or ErrStoreNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// FindAll lists every store.
	FindAll(ctx context.Context) ([]*entity.Store, error)

	// Update persists changes to an existing store.
	Update(ctx context.Context, store *entity.Store) error

	// Delete removes a store. The database cascades the removal to the
	// store's products. Returns ErrStoreNotFound if nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
