package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoreModel mirrors the 'stores' table. The Owner association exists only to
// declare the cascading foreign key; it is never preloaded and never mapped
// into the domain entity, which carries the owner as a plain id.
type StoreModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Owner       *UserModel     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Name        string         `gorm:"type:varchar(100);not null"`
	Description string         `gorm:"type:text"`
	Phone       string         `gorm:"type:varchar(30)"`
	ImagePath   string         `gorm:"type:varchar(255)"`
	Address     AddressColumns `gorm:"embedded;embeddedPrefix:address_"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}

// BeforeCreate assigns an ID when none was provided.
func (m *StoreModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
