package persistence

import (
	"context"
	"errors"

	"github.com/printhub/backend/internal/domain/printing"
	"github.com/printhub/backend/internal/domain/shared"
	"github.com/printhub/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProviderRepository implements ProviderRepository using GORM
type GormProviderRepository struct {
	db *gorm.DB
}

// NewGormProviderRepository creates a new GormProviderRepository
func NewGormProviderRepository(db *gorm.DB) *GormProviderRepository {
	return &GormProviderRepository{db: db}
}

// FindByID finds a provider by ID, including its parameters
func (r *GormProviderRepository) FindByID(ctx context.Context, id uuid.UUID) (*printing.Provider, error) {
	var model models.ProviderModel
	if err := r.db.WithContext(ctx).Preload("Params").First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindBySearchKey finds a provider by its search key
func (r *GormProviderRepository) FindBySearchKey(ctx context.Context, searchKey string) (*printing.Provider, error) {
	var model models.ProviderModel
	if err := r.db.WithContext(ctx).Preload("Params").
		Where("search_key = ?", searchKey).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all providers with optional filtering
func (r *GormProviderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]printing.Provider, error) {
	var providerModels []models.ProviderModel
	query := r.db.WithContext(ctx).Model(&models.ProviderModel{}).Preload("Params")

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	sortField := ValidateSortField(filter.OrderBy, ProviderSortFields, "created_at")
	query = query.Order(sortField + " " + ValidateSortOrder(filter.OrderDir))

	if err := query.Find(&providerModels).Error; err != nil {
		return nil, err
	}

	providers := make([]printing.Provider, len(providerModels))
	for i := range providerModels {
		providers[i] = *providerModels[i].ToDomain()
	}
	return providers, nil
}

// FindActive finds all active providers
func (r *GormProviderRepository) FindActive(ctx context.Context) ([]printing.Provider, error) {
	var providerModels []models.ProviderModel
	if err := r.db.WithContext(ctx).Preload("Params").
		Where("is_active = ?", true).
		Order("search_key ASC").
		Find(&providerModels).Error; err != nil {
		return nil, err
	}

	providers := make([]printing.Provider, len(providerModels))
	for i := range providerModels {
		providers[i] = *providerModels[i].ToDomain()
	}
	return providers, nil
}

// Save persists a provider and its parameters
func (r *GormProviderRepository) Save(ctx context.Context, provider *printing.Provider) error {
	model := models.ProviderModelFromDomain(provider)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Omit("Params").Create(model).Error; err != nil {
			return err
		}
		// Parameters are replaced wholesale with the in-memory set.
		if err := tx.Where("provider_id = ?", model.ID).Delete(&models.ProviderParamModel{}).Error; err != nil {
			return err
		}
		if len(model.Params) == 0 {
			return nil
		}
		return tx.Create(&model.Params).Error
	})
}

// Delete removes a provider and cascades to its parameters
func (r *GormProviderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("provider_id = ?", id).Delete(&models.ProviderParamModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.ProviderModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Ensure GormProviderRepository implements ProviderRepository
var _ printing.ProviderRepository = (*GormProviderRepository)(nil)
