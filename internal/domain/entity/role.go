package entity

import "slices"

// Role represents the type of role a user can have in the system.
// A role is assigned at registration and never changes afterwards.
type Role string

const (
	// RoleCustomer indicates a regular customer who places orders.
	RoleCustomer Role = "customer"
	// RoleVendor indicates a store owner who manages a catalog.
	RoleVendor Role = "vendor"
	// RoleAdmin indicates an administrator with unrestricted access.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleVendor, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
