package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/entity"
)

// OrderRepository persists and retrieves orders together with their lines.
type OrderRepository interface {
	// Create persists a new order and all of its lines.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its lines, or ErrOrderNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindAll lists every order with lines, newest first.
	FindAll(ctx context.Context) ([]*entity.Order, error)

	// FindByCustomer lists the orders owned by one customer, newest first.
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// UpdateStatus sets an order's status without touching any other field.
	// Returns ErrOrderNotFound if the order does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// Delete removes an order; the database cascades the removal to its
	// lines. Returns ErrOrderNotFound if nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
