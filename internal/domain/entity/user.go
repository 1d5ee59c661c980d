// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity entity. The login identifier (a CPF or an email
// address) is unique across all users and is the credential used to sign in.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Login        string    // The unique login identifier, either a CPF or an email address.
	Name         string    // The user's display name.
	Age          int       // The user's age, captured at registration.
	City         string    // The city the user registered from.
	PasswordHash string    // The bcrypt hash of the user's password. Never serialized outward.
	Role         Role      // The user's role. Immutable once the account is created.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
