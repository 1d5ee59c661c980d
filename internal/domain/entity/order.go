package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the delivery lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusPending is the initial state of every new order.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusPreparing means the store accepted the order and is preparing it.
	OrderStatusPreparing OrderStatus = "preparing"
	// OrderStatusEnRoute means the order left the store for delivery.
	OrderStatusEnRoute OrderStatus = "en_route"
	// OrderStatusDelivered is a terminal state: the order reached the customer.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled is a terminal state reachable from any other state.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value. Membership is the only
// check performed on status updates: the lifecycle is forward-ordered by
// convention, but no transition table is enforced.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusEnRoute,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// PaymentMethod represents how the customer pays for an order.
type PaymentMethod string

const (
	// PaymentMethodCash is payment in cash on delivery.
	PaymentMethodCash PaymentMethod = "cash"
	// PaymentMethodCard is payment by card on delivery.
	PaymentMethodCard PaymentMethod = "card"
	// PaymentMethodPix is an instant bank transfer.
	PaymentMethodPix PaymentMethod = "pix"
)

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodPix:
		return true
	default:
		return false
	}
}

// Order is a customer's purchase. The delivery address is an independent copy
// and the total is fixed at creation; status updates never recompute it.
type Order struct {
	ID              uuid.UUID       // The unique identifier for the order.
	CustomerID      uuid.UUID       // The user who placed the order.
	DeliveryAddress Address         // Destination address, copied at creation.
	PaymentMethod   PaymentMethod   // How the customer pays.
	Total           decimal.Decimal // Total value, decimal(10,2), fixed at creation.
	Status          OrderStatus     // Current lifecycle state.
	Notes           string          // Optional free-text notes for the store or courier.
	Lines           []OrderLine     // The ordered line items.
	CreatedAt       time.Time       // Timestamp of when this order was placed.
	UpdatedAt       time.Time       // Timestamp of the last modification.
}

// OrderLine is a single line item of an order. UnitPrice is a snapshot of the
// product's price at order-creation time; it and Subtotal are frozen from
// then on, immune to later catalog price changes.
type OrderLine struct {
	ID        uuid.UUID       // The unique identifier for the line.
	OrderID   uuid.UUID       // The order this line belongs to.
	ProductID uuid.UUID       // The product this line references. Historical; not re-resolved.
	Quantity  int             // Number of units ordered.
	UnitPrice decimal.Decimal // Price per unit at creation time, decimal(10,2).
	Subtotal  decimal.Decimal // UnitPrice multiplied by Quantity, frozen at creation.
}
