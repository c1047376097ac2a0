package usecase

import (
	"context"
)

// CreateProductInput defines the data required to create a listing.
// Price and Number are required as non-zero values, matching the falsy field
// check the API has always performed.
type CreateProductInput struct {
	Username    string  `json:"username" validate:"required"`
	ProductName string  `json:"product_name" validate:"required"`
	Price       float64 `json:"price" validate:"required"`
	Number      int     `json:"number" validate:"required"`
	Delivery    string  `json:"delivery"`
}

// UpdateProductInput defines a partial listing update. Only the username is
// required; absent or zero-valued fields keep their stored values.
type UpdateProductInput struct {
	Username    string  `json:"username" validate:"required"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Number      int     `json:"number"`
	Delivery    string  `json:"delivery"`
}

// ProductOutput is the listing shape returned to callers.
type ProductOutput struct {
	ID          uint    `json:"id"`
	Username    string  `json:"username"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Number      int     `json:"number"`
	Delivery    string  `json:"delivery"`
}

// ProductUsecase defines the interface for listing-related business operations.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, input *CreateProductInput) (*ProductOutput, error)
	UpdateProduct(ctx context.Context, input *UpdateProductInput) error
	ListProducts(ctx context.Context) ([]*ProductOutput, error)
}
