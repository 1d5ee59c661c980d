// Package policy implements the single authorization rule of the system.
// Every endpoint instantiates the same decision with its own required role
// set, so the rule is defined once and tested once.
package policy

import (
	"github.com/google/uuid"

	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/entity"
)

// Allow decides whether a caller may perform an operation.
//
// Admins always pass, both the role check and the ownership check. Any other
// caller passes only if its role is in required AND the resource either has
// no owner to check (ownerID nil) or is owned by the caller.
func Allow(callerRole entity.Role, callerID uuid.UUID, ownerID *uuid.UUID, required entity.Roles) bool {
	if callerRole == entity.RoleAdmin {
		return true
	}

	if !required.Contains(callerRole) {
		return false
	}

	return ownerID == nil || *ownerID == callerID
}

// Owned is a convenience helper for passing an ownership check target.
func Owned(id uuid.UUID) *uuid.UUID {
	return &id
}
