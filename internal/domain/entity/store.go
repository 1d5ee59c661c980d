package entity

import (
	"time"

	"github.com/google/uuid"
)

// Store is a vendor's storefront. It is owned by exactly one user (a vendor
// or an admin); ownership is carried as a plain foreign key, never as a
// back-pointer into the user object graph.
type Store struct {
	ID          uuid.UUID // The unique identifier for the store.
	OwnerID     uuid.UUID // The user who owns this store.
	Name        string    // Display name of the store.
	Description string    // Free-text description shown in listings.
	Phone       string    // Contact phone number.
	ImagePath   string    // Path of the uploaded storefront image, if any.
	Address     Address   // Physical location of the store, including geocoordinates.
	CreatedAt   time.Time // Timestamp of when this store was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
