package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductModel mirrors the 'products' table. Deleting a store cascades to its
// products through the Store foreign key. Money columns are decimal(10,2).
type ProductModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	StoreID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Store         *StoreModel     `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`
	Name          string          `gorm:"type:varchar(100);not null"`
	Description   string          `gorm:"type:text"`
	ImagePath     string          `gorm:"type:varchar(255)"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Available     bool            `gorm:"not null;default:true"`
	RatingAverage float64         `gorm:"not null;default:0"`
	RatingCount   int             `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// BeforeCreate assigns an ID when none was provided.
func (m *ProductModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
