// Package model holds the GORM persistence models mirroring the database
// tables. Models are mapped to and from pure domain entities at the
// repository boundary; nothing above the repositories sees them.
package model

// AddressColumns is the embedded column set for structured addresses.
// Stores embed it with an "address_" prefix, orders with a "delivery_"
// prefix so the delivery destination is an independent copy.
type AddressColumns struct {
	Street     string `gorm:"type:varchar(255)"`
	Number     string `gorm:"type:varchar(20)"`
	District   string `gorm:"type:varchar(100)"`
	City       string `gorm:"type:varchar(100)"`
	State      string `gorm:"type:varchar(50)"`
	PostalCode string `gorm:"type:varchar(20)"`
	Latitude   float64
	Longitude  float64
}
