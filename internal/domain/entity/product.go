package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item belonging to exactly one store. Prices are
// fixed-point values with two fractional digits. The rating fields are
// aggregates only; nothing in this service mutates them.
type Product struct {
	ID            uuid.UUID       // The unique identifier for the product.
	StoreID       uuid.UUID       // The store this product belongs to.
	Name          string          // Display name of the product.
	Description   string          // Free-text description.
	ImagePath     string          // Path of the uploaded product image, if any.
	Price         decimal.Decimal // Current price, decimal(10,2).
	Available     bool            // Whether the product can currently be ordered.
	RatingAverage float64         // Aggregate average rating.
	RatingCount   int             // Number of ratings behind the average.
	CreatedAt     time.Time       // Timestamp of when this product was created.
	UpdatedAt     time.Time       // Timestamp of the last modification.
}
