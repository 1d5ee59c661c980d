package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/entity"
)

// --- Input DTOs ---

// CreateProductInput defines the data required to add a product to a store.
type CreateProductInput struct {
	StoreID     uuid.UUID       `json:"store_id" validate:"required"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	ImagePath   string          `json:"image_path"`
	Price       decimal.Decimal `json:"price"`
	Available   bool            `json:"available"`
}

// UpdateProductInput defines the data accepted when editing a product.
// The owning store never changes.
type UpdateProductInput struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	ImagePath   string          `json:"image_path"`
	Price       decimal.Decimal `json:"price"`
	Available   bool            `json:"available"`
}

// ProductUsecase defines the interface for catalog product operations.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, caller Caller, input *CreateProductInput) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	ListStoreProducts(ctx context.Context, storeID uuid.UUID) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	UpdateProduct(ctx context.Context, caller Caller, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, caller Caller, id uuid.UUID) error
}
