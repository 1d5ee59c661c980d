package entity

// Address is a structured physical location with geocoordinates.
// Stores carry one as their location; orders carry an independent copy as the
// delivery destination, so later store edits never rewrite order history.
type Address struct {
	Street     string  // Street name.
	Number     string  // Street number, kept as text to allow "S/N" and complements.
	District   string  // Neighborhood or district.
	City       string  // City name.
	State      string  // State or province abbreviation.
	PostalCode string  // Postal code (CEP).
	Latitude   float64 // Geographic latitude.
	Longitude  float64 // Geographic longitude.
}
