package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/entity"
)

// ProductRepository persists and retrieves catalog products.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by id, or ErrProductNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindAll lists every product.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindByStore lists a store's products. An unknown store id yields an
	// empty slice; it is not distinguished from a store with no products.
	FindByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Product, error)

	// Update persists changes to an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product. Returns ErrProductNotFound if nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
