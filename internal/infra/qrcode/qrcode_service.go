package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"

	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/service"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// TrackingPayload represents the QR code data structure when no tracking
// base URL is configured.
type TrackingPayload struct {
	OrderID string `json:"order_id"`
	Type    string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance.
func NewQRCodeService(size int, errorCorrectionLevel string, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// GenerateTrackingQR generates a QR code for order tracking. With a base URL
// configured the code encodes a tracking link, otherwise a JSON payload.
func (s *qrcodeService) GenerateTrackingQR(orderID uuid.UUID) ([]byte, error) {
	var content string
	if s.baseURL != "" {
		content = fmt.Sprintf("%s/Pedidos/%s", strings.TrimSuffix(s.baseURL, "/"), orderID)
	} else {
		payload := TrackingPayload{
			OrderID: orderID.String(),
			Type:    "tracking",
		}

		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
		}
		content = string(jsonData)
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
