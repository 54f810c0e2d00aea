package persistence

import (
	"context"
	"errors"

	"github.com/printhub/backend/internal/domain/printing"
	"github.com/printhub/backend/internal/domain/shared"
	"github.com/printhub/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLabelTableRepository implements LabelTableRepository using GORM
type GormLabelTableRepository struct {
	db *gorm.DB
}

// NewGormLabelTableRepository creates a new GormLabelTableRepository
func NewGormLabelTableRepository(db *gorm.DB) *GormLabelTableRepository {
	return &GormLabelTableRepository{db: db}
}

// FindByTableID finds a label table by its ERP table identifier
func (r *GormLabelTableRepository) FindByTableID(ctx context.Context, tableID string) (*printing.LabelTable, error) {
	var model models.LabelTableModel
	if err := r.db.WithContext(ctx).
		Where("table_id = ?", tableID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all label tables
func (r *GormLabelTableRepository) FindAll(ctx context.Context, filter shared.Filter) ([]printing.LabelTable, error) {
	var tableModels []models.LabelTableModel
	query := r.db.WithContext(ctx).Model(&models.LabelTableModel{})

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	sortField := ValidateSortField(filter.OrderBy, LabelTableSortFields, "table_id")
	query = query.Order(sortField + " " + ValidateSortOrder(filter.OrderDir))

	if err := query.Find(&tableModels).Error; err != nil {
		return nil, err
	}

	tables := make([]printing.LabelTable, len(tableModels))
	for i := range tableModels {
		tables[i] = *tableModels[i].ToDomain()
	}
	return tables, nil
}

// Save persists a label table
func (r *GormLabelTableRepository) Save(ctx context.Context, table *printing.LabelTable) error {
	model := models.LabelTableModelFromDomain(table)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(model).Error
}

// Ensure GormLabelTableRepository implements LabelTableRepository
var _ printing.LabelTableRepository = (*GormLabelTableRepository)(nil)
