package service

import (
	"context"
	"time"
)

// Order event types published over the event stream.
const (
	OrderEventCreated       = "order_created"
	OrderEventStatusChanged = "order_status_changed"
	OrderEventDeleted       = "order_deleted"
)

// OrderEvent describes an order lifecycle change for downstream consumers.
// Publishing is best-effort and synchronous within the request; a failed
// publish is logged and never fails the operation that produced it.
type OrderEvent struct {
	Type       string    `json:"type"`
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id,omitempty"`
	Status     string    `json:"status,omitempty"`
	Total      string    `json:"total,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing order lifecycle events.
type EventPublisher interface {
	// PublishOrderEvent publishes one order lifecycle event.
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
