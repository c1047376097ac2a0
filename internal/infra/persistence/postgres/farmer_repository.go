// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"harvest/internal/domain/entity"
	"harvest/internal/domain/repository"
	"harvest/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// farmerRepository implements the repository.FarmerRepository interface using GORM.
type farmerRepository struct {
	db *gorm.DB
}

// NewFarmerRepository is the constructor for farmerRepository.
// It returns the implementation as a repository.FarmerRepository interface, adhering to dependency inversion.
func NewFarmerRepository(db *gorm.DB) repository.FarmerRepository {
	return &farmerRepository{db: db}
}

// ExistsByUsername reports whether a farmer with the given username exists.
func (repo *farmerRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.FarmerModel{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check farmer existence")
	}

	return count > 0, nil
}

// Create persists a new farmer. The caller is expected to have pre-checked
// the username; a concurrent registration that slips past the pre-check hits
// the unique index here and is mapped back to the same domain error.
func (repo *farmerRepository) Create(ctx context.Context, farmer *entity.Farmer) error {
	farmerM := fromFarmerDomain(farmer)

	if err := repo.db.WithContext(ctx).Create(farmerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUsernameTaken
		}

		return errors.Wrap(err, "failed to create farmer")
	}

	farmer.ID = farmerM.ID

	return nil
}

// FindByUsername retrieves a single farmer by username.
func (repo *farmerRepository) FindByUsername(ctx context.Context, username string) (*entity.Farmer, error) {
	var farmerM model.FarmerModel
	err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&farmerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFarmerNotFound
		}

		return nil, errors.Wrap(err, "failed to find farmer by username")
	}

	return toFarmerDomain(&farmerM), nil
}

// UpdatePassword replaces the stored digest for the given username.
// Zero affected rows means the farmer does not exist; rewriting an identical
// digest still counts as an update and is not an error.
func (repo *farmerRepository) UpdatePassword(ctx context.Context, username string, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FarmerModel{}).
		Where("username = ?", username).
		Update("password", passwordHash)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update farmer password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFarmerNotFound
	}

	return nil
}

// ListAll returns every farmer in storage order.
func (repo *farmerRepository) ListAll(ctx context.Context) ([]*entity.Farmer, error) {
	var farmerModels []model.FarmerModel
	if err := repo.db.WithContext(ctx).Find(&farmerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list farmers")
	}

	farmers := make([]*entity.Farmer, 0, len(farmerModels))
	for i := range farmerModels {
		farmers = append(farmers, toFarmerDomain(&farmerModels[i]))
	}

	return farmers, nil
}

// DeleteByUsername removes a farmer row. The ON DELETE CASCADE constraint on
// products removes every listing owned by the account, regardless of
// application state.
func (repo *farmerRepository) DeleteByUsername(ctx context.Context, username string) error {
	result := repo.db.WithContext(ctx).
		Where("username = ?", username).
		Delete(&model.FarmerModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete farmer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFarmerNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toFarmerDomain converts a GORM FarmerModel to a domain Farmer entity.
func toFarmerDomain(data *model.FarmerModel) *entity.Farmer {
	if data == nil {
		return nil
	}

	return &entity.Farmer{
		ID:           data.ID,
		Username:     data.Username,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		Gender:       data.Gender,
		Location:     data.Location,
	}
}

// fromFarmerDomain converts a domain Farmer entity to a GORM FarmerModel for persistence.
func fromFarmerDomain(data *entity.Farmer) *model.FarmerModel {
	if data == nil {
		return nil
	}

	return &model.FarmerModel{
		ID:           data.ID,
		Username:     data.Username,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		Gender:       data.Gender,
		Location:     data.Location,
	}
}
