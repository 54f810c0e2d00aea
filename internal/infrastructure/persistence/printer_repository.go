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

// GormPrinterRepository implements PrinterRepository using GORM
type GormPrinterRepository struct {
	db *gorm.DB
}

// NewGormPrinterRepository creates a new GormPrinterRepository
func NewGormPrinterRepository(db *gorm.DB) *GormPrinterRepository {
	return &GormPrinterRepository{db: db}
}

// FindByID finds a printer by ID
func (r *GormPrinterRepository) FindByID(ctx context.Context, id uuid.UUID) (*printing.Printer, error) {
	var model models.PrinterModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByProvider finds all printers of a provider, active or not
func (r *GormPrinterRepository) FindByProvider(ctx context.Context, providerID uuid.UUID) ([]printing.Printer, error) {
	var printerModels []models.PrinterModel
	if err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("name ASC").
		Find(&printerModels).Error; err != nil {
		return nil, err
	}
	return toPrinters(printerModels), nil
}

// FindActiveByProvider finds all active printers of a provider
func (r *GormPrinterRepository) FindActiveByProvider(ctx context.Context, providerID uuid.UUID) ([]printing.Printer, error) {
	var printerModels []models.PrinterModel
	if err := r.db.WithContext(ctx).
		Where("provider_id = ? AND is_active = ?", providerID, true).
		Order("name ASC").
		Find(&printerModels).Error; err != nil {
		return nil, err
	}
	return toPrinters(printerModels), nil
}

// FindByExternalID finds a printer by provider and remote identifier
func (r *GormPrinterRepository) FindByExternalID(ctx context.Context, providerID uuid.UUID, externalID string) (*printing.Printer, error) {
	var model models.PrinterModel
	if err := r.db.WithContext(ctx).
		Where("provider_id = ? AND external_id = ?", providerID, externalID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save persists a printer
func (r *GormPrinterRepository) Save(ctx context.Context, printer *printing.Printer) error {
	model := models.PrinterModelFromDomain(printer)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(model).Error
}

func toPrinters(printerModels []models.PrinterModel) []printing.Printer {
	printers := make([]printing.Printer, len(printerModels))
	for i := range printerModels {
		printers[i] = *printerModels[i].ToDomain()
	}
	return printers
}

// Ensure GormPrinterRepository implements PrinterRepository
var _ printing.PrinterRepository = (*GormPrinterRepository)(nil)
