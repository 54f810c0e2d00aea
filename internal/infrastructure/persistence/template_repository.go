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

// GormTemplateRepository implements TemplateRepository using GORM
type GormTemplateRepository struct {
	db *gorm.DB
}

// NewGormTemplateRepository creates a new GormTemplateRepository
func NewGormTemplateRepository(db *gorm.DB) *GormTemplateRepository {
	return &GormTemplateRepository{db: db}
}

// FindByID finds a template by ID, including its lines
func (r *GormTemplateRepository) FindByID(ctx context.Context, id uuid.UUID) (*printing.LabelTemplate, error) {
	var model models.LabelTemplateModel
	if err := r.db.WithContext(ctx).Preload("Lines").First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindActiveByTable finds the active templates bound to a label table
func (r *GormTemplateRepository) FindActiveByTable(ctx context.Context, tableID uuid.UUID) ([]printing.LabelTemplate, error) {
	var templateModels []models.LabelTemplateModel
	if err := r.db.WithContext(ctx).Preload("Lines").
		Where("table_id = ? AND is_active = ?", tableID, true).
		Order("search_key ASC").
		Find(&templateModels).Error; err != nil {
		return nil, err
	}

	templates := make([]printing.LabelTemplate, len(templateModels))
	for i := range templateModels {
		templates[i] = *templateModels[i].ToDomain()
	}
	return templates, nil
}

// Save persists a template and its lines
func (r *GormTemplateRepository) Save(ctx context.Context, template *printing.LabelTemplate) error {
	model := models.LabelTemplateModelFromDomain(template)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Omit("Lines").Create(model).Error; err != nil {
			return err
		}
		// Lines are replaced wholesale with the in-memory set.
		if err := tx.Where("template_id = ?", model.ID).Delete(&models.TemplateLineModel{}).Error; err != nil {
			return err
		}
		if len(model.Lines) == 0 {
			return nil
		}
		return tx.Create(&model.Lines).Error
	})
}

// Ensure GormTemplateRepository implements TemplateRepository
var _ printing.TemplateRepository = (*GormTemplateRepository)(nil)
