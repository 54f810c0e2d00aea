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

// GormPrintJobRepository implements PrintJobRepository using GORM
type GormPrintJobRepository struct {
	db *gorm.DB
}

// NewGormPrintJobRepository creates a new GormPrintJobRepository
func NewGormPrintJobRepository(db *gorm.DB) *GormPrintJobRepository {
	return &GormPrintJobRepository{db: db}
}

// FindByID finds a job by ID
func (r *GormPrintJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*printing.PrintJob, error) {
	var model models.PrintJobModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByProvider finds jobs of a provider matching the filter
func (r *GormPrintJobRepository) FindByProvider(ctx context.Context, providerID uuid.UUID, filter shared.Filter) ([]printing.PrintJob, error) {
	var jobModels []models.PrintJobModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.PrintJobModel{}).Where("provider_id = ?", providerID), filter)

	if err := query.Find(&jobModels).Error; err != nil {
		return nil, err
	}

	jobs := make([]printing.PrintJob, len(jobModels))
	for i := range jobModels {
		jobs[i] = *jobModels[i].ToDomain()
	}
	return jobs, nil
}

// Save persists a print job
func (r *GormPrintJobRepository) Save(ctx context.Context, job *printing.PrintJob) error {
	model := models.PrintJobModelFromDomain(job)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(model).Error
}

// applyFilter applies filter options to the query
func (r *GormPrintJobRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "table_id":
			query = query.Where("table_id = ?", value)
		case "record_id":
			query = query.Where("record_id = ?", value)
		case "printer_id":
			query = query.Where("printer_id = ?", value)
		}
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	sortField := ValidateSortField(filter.OrderBy, PrintJobSortFields, "created_at")
	return query.Order(sortField + " " + ValidateSortOrder(filter.OrderDir))
}

// Ensure GormPrintJobRepository implements PrintJobRepository
var _ printing.PrintJobRepository = (*GormPrintJobRepository)(nil)
