package handler

import (
	"time"

	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/entity"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/usecase"
)

// Outward shapes of the catalog and order entities. Money fields are
// rendered as fixed two-decimal strings.

// AddressView is the outward shape of an address.
type AddressView struct {
	Street     string  `json:"street"`
	Number     string  `json:"number"`
	District   string  `json:"district"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode string  `json:"postal_code"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

// StoreView is the outward shape of a store.
type StoreView struct {
	ID          string      `json:"id"`
	OwnerID     string      `json:"owner_id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Phone       string      `json:"phone"`
	ImagePath   string      `json:"image_path"`
	Address     AddressView `json:"address"`
	CreatedAt   time.Time   `json:"created_at"`
}

// NearbyStoreView pairs a store view with its distance from the search point.
type NearbyStoreView struct {
	Store      *StoreView `json:"store"`
	DistanceKm float64    `json:"distance_km"`
}

// ProductView is the outward shape of a product.
type ProductView struct {
	ID            string    `json:"id"`
	StoreID       string    `json:"store_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	ImagePath     string    `json:"image_path"`
	Price         string    `json:"price"`
	Available     bool      `json:"available"`
	RatingAverage float64   `json:"rating_average"`
	RatingCount   int       `json:"rating_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// OrderLineView is the outward shape of an order line.
type OrderLineView struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

// OrderView is the outward shape of an order.
type OrderView struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customer_id"`
	DeliveryAddress AddressView     `json:"delivery_address"`
	PaymentMethod   string          `json:"payment_method"`
	Total           string          `json:"total"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes,omitempty"`
	Lines           []OrderLineView `json:"lines"`
	CreatedAt       time.Time       `json:"created_at"`
}

func newAddressView(address entity.Address) AddressView {
	return AddressView{
		Street:     address.Street,
		Number:     address.Number,
		District:   address.District,
		City:       address.City,
		State:      address.State,
		PostalCode: address.PostalCode,
		Latitude:   address.Latitude,
		Longitude:  address.Longitude,
	}
}

func newStoreView(store *entity.Store) *StoreView {
	return &StoreView{
		ID:          store.ID.String(),
		OwnerID:     store.OwnerID.String(),
		Name:        store.Name,
		Description: store.Description,
		Phone:       store.Phone,
		ImagePath:   store.ImagePath,
		Address:     newAddressView(store.Address),
		CreatedAt:   store.CreatedAt,
	}
}

func newStoreViews(stores []*entity.Store) []*StoreView {
	views := make([]*StoreView, 0, len(stores))
	for _, store := range stores {
		views = append(views, newStoreView(store))
	}

	return views
}

func newNearbyStoreViews(nearby []*usecase.NearbyStore) []*NearbyStoreView {
	views := make([]*NearbyStoreView, 0, len(nearby))
	for _, item := range nearby {
		views = append(views, &NearbyStoreView{
			Store:      newStoreView(item.Store),
			DistanceKm: item.DistanceKm,
		})
	}

	return views
}

func newProductView(product *entity.Product) *ProductView {
	return &ProductView{
		ID:            product.ID.String(),
		StoreID:       product.StoreID.String(),
		Name:          product.Name,
		Description:   product.Description,
		ImagePath:     product.ImagePath,
		Price:         product.Price.StringFixed(2),
		Available:     product.Available,
		RatingAverage: product.RatingAverage,
		RatingCount:   product.RatingCount,
		CreatedAt:     product.CreatedAt,
	}
}

func newProductViews(products []*entity.Product) []*ProductView {
	views := make([]*ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, newProductView(product))
	}

	return views
}

func newOrderView(order *entity.Order) *OrderView {
	lines := make([]OrderLineView, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, OrderLineView{
			ID:        line.ID.String(),
			ProductID: line.ProductID.String(),
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.StringFixed(2),
			Subtotal:  line.Subtotal.StringFixed(2),
		})
	}

	return &OrderView{
		ID:              order.ID.String(),
		CustomerID:      order.CustomerID.String(),
		DeliveryAddress: newAddressView(order.DeliveryAddress),
		PaymentMethod:   string(order.PaymentMethod),
		Total:           order.Total.StringFixed(2),
		Status:          order.Status.String(),
		Notes:           order.Notes,
		Lines:           lines,
		CreatedAt:       order.CreatedAt,
	}
}

func newOrderViews(orders []*entity.Order) []*OrderView {
	views := make([]*OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, newOrderView(order))
	}

	return views
}
