package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/entity"
)

// --- Input DTOs ---

// OrderLineInput is one requested line of a new order.
type OrderLineInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderInput defines the data required to place an order. The total is
// the value declared by the client and is persisted verbatim; line subtotals
// are computed server-side from the snapshotted unit prices.
type CreateOrderInput struct {
	DeliveryAddress AddressInput     `json:"delivery_address" validate:"required"`
	PaymentMethod   string           `json:"payment_method" validate:"required"`
	Total           decimal.Decimal  `json:"total"`
	Notes           string           `json:"notes"`
	Lines           []OrderLineInput `json:"lines" validate:"required,min=1,dive"`
}

// UpdateOrderStatusInput carries the new status for an order.
type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// OrderUsecase defines the interface for order lifecycle operations.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, caller Caller, input *CreateOrderInput) (*entity.Order, error)
	ListOrders(ctx context.Context, caller Caller) ([]*entity.Order, error)
	GetOrder(ctx context.Context, caller Caller, id uuid.UUID) (*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, caller Caller, id uuid.UUID, input *UpdateOrderStatusInput) (*entity.Order, error)
	DeleteOrder(ctx context.Context, caller Caller, id uuid.UUID) error
	TrackingQR(ctx context.Context, caller Caller, id uuid.UUID) ([]byte, error)
}
