package printing

import (
	"context"

	"github.com/printhub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProviderRepository defines the interface for provider persistence
type ProviderRepository interface {
	// FindByID finds a provider by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Provider, error)

	// FindBySearchKey finds a provider by its search key
	FindBySearchKey(ctx context.Context, searchKey string) (*Provider, error)

	// FindAll finds all providers matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Provider, error)

	// FindActive finds all active providers
	FindActive(ctx context.Context) ([]Provider, error)

	// Save persists a provider and its parameters
	Save(ctx context.Context, provider *Provider) error

	// Delete removes a provider
	Delete(ctx context.Context, id uuid.UUID) error
}

// PrinterRepository defines the interface for printer persistence
type PrinterRepository interface {
	// FindByID finds a printer by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Printer, error)

	// FindByProvider finds all printers of a provider
	FindByProvider(ctx context.Context, providerID uuid.UUID) ([]Printer, error)

	// FindActiveByProvider finds all active printers of a provider
	FindActiveByProvider(ctx context.Context, providerID uuid.UUID) ([]Printer, error)

	// FindByExternalID finds a printer by provider and remote identifier
	FindByExternalID(ctx context.Context, providerID uuid.UUID, externalID string) (*Printer, error)

	// Save persists a printer
	Save(ctx context.Context, printer *Printer) error
}

// LabelTableRepository defines the interface for label table persistence
type LabelTableRepository interface {
	// FindByTableID finds a label table by its ERP table identifier
	FindByTableID(ctx context.Context, tableID string) (*LabelTable, error)

	// FindAll finds all label tables
	FindAll(ctx context.Context, filter shared.Filter) ([]LabelTable, error)

	// Save persists a label table
	Save(ctx context.Context, table *LabelTable) error
}

// TemplateRepository defines the interface for label template persistence
type TemplateRepository interface {
	// FindByID finds a template by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*LabelTemplate, error)

	// FindActiveByTable finds the active templates bound to a label table
	FindActiveByTable(ctx context.Context, tableID uuid.UUID) ([]LabelTemplate, error)

	// Save persists a template and its lines
	Save(ctx context.Context, template *LabelTemplate) error
}

// PrintJobRepository defines the interface for print job persistence
type PrintJobRepository interface {
	// FindByID finds a print job by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*PrintJob, error)

	// FindByProvider finds jobs of a provider matching the filter
	FindByProvider(ctx context.Context, providerID uuid.UUID, filter shared.Filter) ([]PrintJob, error)

	// Save persists a print job
	Save(ctx context.Context, job *PrintJob) error
}
