package postgres

import (
	"context"

	"harvest/internal/domain/entity"
	"harvest/internal/domain/repository"
	"harvest/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a new product after confirming the owner exists. The
// existence check produces the user-facing error; the foreign key remains the
// atomic source of truth and a violation maps to the same domain error.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	var ownerCount int64
	err := repo.db.WithContext(ctx).
		Model(&model.FarmerModel{}).
		Where("username = ?", product.Username).
		Count(&ownerCount).Error
	if err != nil {
		return errors.Wrap(err, "failed to check product owner existence")
	}
	if ownerCount == 0 {
		return repository.ErrOwnerNotFound
	}

	productM := fromProductDomain(product)
	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOwnerNotFound
		}

		return errors.Wrap(err, "failed to create product")
	}

	product.ID = productM.ID

	return nil
}

// FindFirstByUsername retrieves the first product owned by the given username
// in storage order.
func (repo *productRepository) FindFirstByUsername(ctx context.Context, username string) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		Order("id").
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by username")
	}

	return toProductDomain(&productM), nil
}

// Update writes the given field values to every product row owned by the
// product's username, mirroring the original storage behavior.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("username = ?", product.Username).
		Updates(map[string]any{
			"product_name": product.ProductName,
			"price":        product.Price,
			"number":       product.Number,
			"delivery":     product.Delivery,
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed to update product")
	}

	return nil
}

// ListAll returns every product in storage order, a snapshot at call time.
func (repo *productRepository) ListAll(ctx context.Context) ([]*entity.Product, error) {
	var productModels []model.ProductModel
	if err := repo.db.WithContext(ctx).Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, toProductDomain(&productModels[i]))
	}

	return products, nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		Username:    data.Username,
		ProductName: data.ProductName,
		Price:       data.Price,
		Number:      data.Number,
		Delivery:    data.Delivery,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel for persistence.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		Username:    data.Username,
		ProductName: data.ProductName,
		Price:       data.Price,
		Number:      data.Number,
		Delivery:    data.Delivery,
	}
}
