package usecase

import (
	"context"
	"time"

	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// The login identifier is a CPF or an email address.
type RegisterInput struct {
	Name            string `json:"name" validate:"required"`
	Login           string `json:"login" validate:"required"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	Age             int    `json:"age" validate:"omitempty,gte=0"`
	City            string `json:"city"`
	Role            string `json:"role" validate:"required"`
}

// LoginInput defines the data required to sign in.
type LoginInput struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// UserView is the outward shape of a user. The password hash never leaves
// the domain layer.
type UserView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Login string `json:"login"`
	Age   int    `json:"age"`
	City  string `json:"city"`
	Role  string `json:"role"`
}

// AuthOutput returns the signed token and the user summary after a
// successful registration or login.
type AuthOutput struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      *UserView `json:"user"`
}

// NewUserView maps a user entity to its outward view.
func NewUserView(user *entity.User) *UserView {
	return &UserView{
		ID:    user.ID.String(),
		Name:  user.Name,
		Login: user.Login,
		Age:   user.Age,
		City:  user.City,
		Role:  user.Role.String(),
	}
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
