// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new farmer account.
type RegisterInput struct {
	Username string `json:"username" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
	Gender   string `json:"gender" validate:"required"`
	Location string `json:"location" validate:"required"`
}

// LoginInput defines the data required for a farmer to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordInput defines the data required to replace a stored password.
type ChangePasswordInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// LoginOutput returns the session token issued after a successful login.
type LoginOutput struct {
	Token string `json:"jwt_token"`
}

// FarmerOutput is the account shape that crosses the trust boundary.
// The password digest is deliberately absent.
type FarmerOutput struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Gender   string `json:"gender"`
	Location string `json:"location"`
}

// FarmerUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type FarmerUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*FarmerOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error
	ListFarmers(ctx context.Context) ([]*FarmerOutput, error)
	GetProfile(ctx context.Context, username string) (*FarmerOutput, error)
}
