// Package delivery defines the inbound transport contract. Each delivery
// mechanism (HTTP today) implements it and is driven by the composition root.
package delivery

import "context"

// Delivery is a server that accepts inbound requests until its context is
// canceled or shutdown is requested through the lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
