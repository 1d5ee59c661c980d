package service

import "github.com/google/uuid"

// QRCodeService generates scannable tracking codes for orders.
type QRCodeService interface {
	// GenerateTrackingQR returns a PNG QR code encoding the order's
	// tracking payload.
	GenerateTrackingQR(orderID uuid.UUID) ([]byte, error)
}
