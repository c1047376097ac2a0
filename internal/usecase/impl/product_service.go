package impl

import (
	"context"
	"log/slog"

	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct persists a new listing after the owner check. The check and
// the insert share one transaction so the repository's owner pre-check and
// the foreign key see the same snapshot.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*usecase.ProductOutput, error) {
	product := &entity.Product{
		Username:    input.Username,
		ProductName: input.ProductName,
		Price:       input.Price,
		Number:      input.Number,
		Delivery:    input.Delivery,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ProductRepo().Create(ctx, product); err != nil {
			if errors.Is(err, repository.ErrOwnerNotFound) {
				return domainerrors.ErrProductOwnerNotFound.WrapMessage("no account for listing owner")
			}

			return errors.Wrap(err, "failed to create product")
		}

		return nil
	})
	if err != nil {
		if appErr, ok := asAppError(err); ok {
			return nil, appErr
		}
		srv.log(ctx).Error("Failed to execute product creation transaction", slog.String("username", input.Username), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	srv.log(ctx).Debug("Product created", slog.String("username", product.Username), slog.Uint64("productID", uint64(product.ID)))

	return toProductOutput(product), nil
}

// UpdateProduct applies a field-by-field merge onto the owner's first
// listing. Any field absent or zero-valued in the input keeps its stored
// value. That means a price of 0 is treated as "not supplied" and the old
// price survives; a deliberate simplification kept for compatibility.
// TODO: confirm with product owners whether zeroing a price should ever be possible.
func (srv *productService) UpdateProduct(ctx context.Context, input *usecase.UpdateProductInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		current, err := productRepo.FindFirstByUsername(ctx, input.Username)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound.WrapMessage("owner has no listing")
			}

			return errors.Wrap(err, "failed to load product for update")
		}

		merged := mergeProductUpdate(current, input)
		if err := productRepo.Update(ctx, merged); err != nil {
			return errors.Wrap(err, "failed to update product")
		}

		return nil
	})
	if err != nil {
		if appErr, ok := asAppError(err); ok {
			return appErr
		}
		srv.log(ctx).Error("Failed to execute product update transaction", slog.String("username", input.Username), slog.Any("error", err))

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	srv.log(ctx).Debug("Product updated", slog.String("username", input.Username))

	return nil
}

// ListProducts returns a snapshot of every listing in storage order.
func (srv *productService) ListProducts(ctx context.Context) ([]*usecase.ProductOutput, error) {
	products, err := srv.productRepo.ListAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	outputs := make([]*usecase.ProductOutput, 0, len(products))
	for _, product := range products {
		outputs = append(outputs, toProductOutput(product))
	}

	return outputs, nil
}

// mergeProductUpdate keeps the stored value for every falsy input field.
func mergeProductUpdate(current *entity.Product, input *usecase.UpdateProductInput) *entity.Product {
	merged := *current

	if input.ProductName != "" {
		merged.ProductName = input.ProductName
	}
	if input.Price != 0 {
		merged.Price = input.Price
	}
	if input.Number != 0 {
		merged.Number = input.Number
	}
	if input.Delivery != "" {
		merged.Delivery = input.Delivery
	}

	return &merged
}

func toProductOutput(product *entity.Product) *usecase.ProductOutput {
	return &usecase.ProductOutput{
		ID:          product.ID,
		Username:    product.Username,
		ProductName: product.ProductName,
		Price:       product.Price,
		Number:      product.Number,
		Delivery:    product.Delivery,
	}
}
