package repository

import (
	"context"
	"errors"

	"harvest/internal/domain/entity"
)

// Domain-specific errors for product persistence.
var (
	// ErrOwnerNotFound is returned when a product references a username with no farmer behind it.
	ErrOwnerNotFound = errors.New("product owner not found")
	// ErrProductNotFound is returned when an owner has no product to operate on.
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// Create persists a new product. Returns ErrOwnerNotFound unless the
	// referenced farmer exists; the foreign key is the final backstop.
	Create(ctx context.Context, product *entity.Product) error

	// FindFirstByUsername retrieves the first product owned by the given
	// username in storage order. Returns ErrProductNotFound when the owner
	// has no product rows.
	FindFirstByUsername(ctx context.Context, username string) (*entity.Product, error)

	// Update persists the given product fields for all rows owned by the
	// product's username.
	Update(ctx context.Context, product *entity.Product) error

	// ListAll returns every product in storage order, a snapshot at call time.
	ListAll(ctx context.Context) ([]*entity.Product, error)
}
