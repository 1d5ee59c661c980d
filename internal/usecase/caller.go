// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"github.com/google/uuid"

	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/entity"
)

// Caller identifies the authenticated principal performing an operation.
// The delivery layer builds it from the resolved token claims.
type Caller struct {
	ID   uuid.UUID
	Role entity.Role
}
