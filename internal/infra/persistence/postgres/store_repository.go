package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/entity"
	domainerrors "github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/errors"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/repository"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/infra/persistence/model"
)

// storeRepository implements the repository.StoreRepository interface using GORM.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

// Create persists a new store.
func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required store information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// FindByID retrieves a store by its unique ID.
func (repo *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var storeM model.StoreModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by id")
	}

	return toStoreDomain(&storeM), nil
}

// FindAll lists every store.
func (repo *storeRepository) FindAll(ctx context.Context) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	stores := make([]*entity.Store, 0, len(storeModels))
	for _, storeM := range storeModels {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores, nil
}

// Update persists changes to an existing store.
func (repo *storeRepository) Update(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	result := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("id = ?", store.ID).
		Updates(map[string]any{
			"name":                storeM.Name,
			"description":         storeM.Description,
			"phone":               storeM.Phone,
			"image_path":          storeM.ImagePath,
			"address_street":      storeM.Address.Street,
			"address_number":      storeM.Address.Number,
			"address_district":    storeM.Address.District,
			"address_city":        storeM.Address.City,
			"address_state":       storeM.Address.State,
			"address_postal_code": storeM.Address.PostalCode,
			"address_latitude":    storeM.Address.Latitude,
			"address_longitude":   storeM.Address.Longitude,
		})

	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required store information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update store")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// Delete removes a store; products cascade through the schema constraint.
func (repo *storeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.StoreModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete store")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	return &entity.Store{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		Phone:       data.Phone,
		ImagePath:   data.ImagePath,
		Address:     toAddressDomain(data.Address),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromStoreDomain(data *entity.Store) *model.StoreModel {
	if data == nil {
		return nil
	}

	return &model.StoreModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		Phone:       data.Phone,
		ImagePath:   data.ImagePath,
		Address:     fromAddressDomain(data.Address),
	}
}

func toAddressDomain(data model.AddressColumns) entity.Address {
	return entity.Address{
		Street:     data.Street,
		Number:     data.Number,
		District:   data.District,
		City:       data.City,
		State:      data.State,
		PostalCode: data.PostalCode,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
	}
}

func fromAddressDomain(data entity.Address) model.AddressColumns {
	return model.AddressColumns{
		Street:     data.Street,
		Number:     data.Number,
		District:   data.District,
		City:       data.City,
		State:      data.State,
		PostalCode: data.PostalCode,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
	}
}
