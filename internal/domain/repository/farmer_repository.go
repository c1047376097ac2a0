// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"harvest/internal/domain/entity"
)

// Domain-specific errors for farmer persistence. The application layer
// matches on these instead of database-specific errors.
var (
	// ErrFarmerNotFound is returned when no farmer matches the given username.
	ErrFarmerNotFound = errors.New("farmer not found")
	// ErrUsernameTaken is returned when a create collides with an existing username,
	// either through the pre-check or the unique index backstop.
	ErrUsernameTaken = errors.New("username already taken")
)

// FarmerRepository defines the standard operations for farmer persistence.
// The application layer depends on this interface, not the concrete implementation.
type FarmerRepository interface {
	// ExistsByUsername reports whether a farmer with the given username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Create persists a new farmer. Returns ErrUsernameTaken when the username
	// is already registered.
	Create(ctx context.Context, farmer *entity.Farmer) error

	// FindByUsername retrieves a single farmer by username.
	// Returns ErrFarmerNotFound when no record matches.
	FindByUsername(ctx context.Context, username string) (*entity.Farmer, error)

	// UpdatePassword replaces the stored password digest for the given username.
	// Returns ErrFarmerNotFound when zero rows match; writing the same digest
	// twice is not an error.
	UpdatePassword(ctx context.Context, username string, passwordHash string) error

	// ListAll returns every farmer in storage order.
	ListAll(ctx context.Context) ([]*entity.Farmer, error)

	// DeleteByUsername removes a farmer. There is no delete endpoint; this
	// exists so the schema-level cascade onto products can be exercised.
	DeleteByUsername(ctx context.Context, username string) error
}
