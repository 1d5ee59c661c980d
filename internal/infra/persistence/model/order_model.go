package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderModel mirrors the 'orders' table. The delivery address is an embedded
// copy, not a reference to the store's address. Deleting the customer
// cascades to the order; deleting the order cascades to its lines.
type OrderModel struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID        `gorm:"type:uuid;not null;index"`
	Customer        *UserModel       `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	DeliveryAddress AddressColumns   `gorm:"embedded;embeddedPrefix:delivery_"`
	PaymentMethod   string           `gorm:"type:varchar(20);not null"`
	Total           decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	Status          string           `gorm:"type:varchar(20);not null;index"`
	Notes           string           `gorm:"type:text"`
	Lines           []OrderLineModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// BeforeCreate assigns an ID when none was provided.
func (m *OrderModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// OrderLineModel mirrors the 'order_lines' table. ProductID is a historical
// reference carried without a foreign key constraint, so catalog deletions
// never rewrite the frozen price snapshot in order history.
type OrderLineModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderLineModel) TableName() string {
	return "order_lines"
}

// BeforeCreate assigns an ID when none was provided.
func (m *OrderLineModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// AllModels lists every model for schema migration.
func AllModels() []any {
	return []any{
		&UserModel{},
		&StoreModel{},
		&ProductModel{},
		&OrderModel{},
		&OrderLineModel{},
	}
}
