package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/entity"
)

// --- Input DTOs ---

// AddressInput carries a structured address with geocoordinates.
type AddressInput struct {
	Street     string  `json:"street" validate:"required"`
	Number     string  `json:"number"`
	District   string  `json:"district"`
	City       string  `json:"city" validate:"required"`
	State      string  `json:"state"`
	PostalCode string  `json:"postal_code"`
	Latitude   float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude  float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

// ToEntity maps the input to the domain address value.
func (a *AddressInput) ToEntity() entity.Address {
	return entity.Address{
		Street:     a.Street,
		Number:     a.Number,
		District:   a.District,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Latitude:   a.Latitude,
		Longitude:  a.Longitude,
	}
}

// CreateStoreInput defines the data required to open a store. The owner is
// always the authenticated caller; any owner id in the payload is ignored.
type CreateStoreInput struct {
	Name        string       `json:"name" validate:"required"`
	Description string       `json:"description"`
	Phone       string       `json:"phone"`
	ImagePath   string       `json:"image_path"`
	Address     AddressInput `json:"address" validate:"required"`
}

// UpdateStoreInput defines the data accepted when editing a store.
type UpdateStoreInput struct {
	Name        string       `json:"name" validate:"required"`
	Description string       `json:"description"`
	Phone       string       `json:"phone"`
	ImagePath   string       `json:"image_path"`
	Address     AddressInput `json:"address" validate:"required"`
}

// --- Output DTOs ---

// NearbyStore pairs a store with its great-circle distance from the
// requested point.
type NearbyStore struct {
	Store      *entity.Store `json:"store"`
	DistanceKm float64       `json:"distance_km"`
}

// StoreUsecase defines the interface for store-related business operations.
type StoreUsecase interface {
	CreateStore(ctx context.Context, caller Caller, input *CreateStoreInput) (*entity.Store, error)
	ListStores(ctx context.Context) ([]*entity.Store, error)
	ListNearbyStores(ctx context.Context, lat, lng, radiusKm float64) ([]*NearbyStore, error)
	GetStore(ctx context.Context, id uuid.UUID) (*entity.Store, error)
	UpdateStore(ctx context.Context, caller Caller, id uuid.UUID, input *UpdateStoreInput) (*entity.Store, error)
	DeleteStore(ctx context.Context, caller Caller, id uuid.UUID) error
}
