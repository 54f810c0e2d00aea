package printing

import (
	"context"

	domain "github.com/printhub/backend/internal/domain/printing"
	"github.com/printhub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// =============================================================================
// Mock Implementations
// =============================================================================

type MockProviderRepository struct {
	mock.Mock
}

func (m *MockProviderRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Provider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

func (m *MockProviderRepository) FindBySearchKey(ctx context.Context, searchKey string) (*domain.Provider, error) {
	args := m.Called(ctx, searchKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

func (m *MockProviderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]domain.Provider, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Provider), args.Error(1)
}

func (m *MockProviderRepository) FindActive(ctx context.Context) ([]domain.Provider, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Provider), args.Error(1)
}

func (m *MockProviderRepository) Save(ctx context.Context, provider *domain.Provider) error {
	args := m.Called(ctx, provider)
	return args.Error(0)
}

func (m *MockProviderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPrinterRepository struct {
	mock.Mock
}

func (m *MockPrinterRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Printer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Printer), args.Error(1)
}

func (m *MockPrinterRepository) FindByProvider(ctx context.Context, providerID uuid.UUID) ([]domain.Printer, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Printer), args.Error(1)
}

func (m *MockPrinterRepository) FindActiveByProvider(ctx context.Context, providerID uuid.UUID) ([]domain.Printer, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Printer), args.Error(1)
}

func (m *MockPrinterRepository) FindByExternalID(ctx context.Context, providerID uuid.UUID, externalID string) (*domain.Printer, error) {
	args := m.Called(ctx, providerID, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Printer), args.Error(1)
}

func (m *MockPrinterRepository) Save(ctx context.Context, printer *domain.Printer) error {
	args := m.Called(ctx, printer)
	return args.Error(0)
}

type MockLabelTableRepository struct {
	mock.Mock
}

func (m *MockLabelTableRepository) FindByTableID(ctx context.Context, tableID string) (*domain.LabelTable, error) {
	args := m.Called(ctx, tableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LabelTable), args.Error(1)
}

func (m *MockLabelTableRepository) FindAll(ctx context.Context, filter shared.Filter) ([]domain.LabelTable, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LabelTable), args.Error(1)
}

func (m *MockLabelTableRepository) Save(ctx context.Context, table *domain.LabelTable) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

type MockTemplateRepository struct {
	mock.Mock
}

func (m *MockTemplateRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.LabelTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LabelTemplate), args.Error(1)
}

func (m *MockTemplateRepository) FindActiveByTable(ctx context.Context, tableID uuid.UUID) ([]domain.LabelTemplate, error) {
	args := m.Called(ctx, tableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LabelTemplate), args.Error(1)
}

func (m *MockTemplateRepository) Save(ctx context.Context, template *domain.LabelTemplate) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

type MockPrintJobRepository struct {
	mock.Mock
}

func (m *MockPrintJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.PrintJob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PrintJob), args.Error(1)
}

func (m *MockPrintJobRepository) FindByProvider(ctx context.Context, providerID uuid.UUID, filter shared.Filter) ([]domain.PrintJob, error) {
	args := m.Called(ctx, providerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PrintJob), args.Error(1)
}

func (m *MockPrintJobRepository) Save(ctx context.Context, job *domain.PrintJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

type MockBackendResolver struct {
	mock.Mock
}

func (m *MockBackendResolver) Resolve(provider *domain.Provider) (domain.Backend, error) {
	args := m.Called(provider)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Backend), args.Error(1)
}

type MockBackend struct {
	mock.Mock
	domain.BaseBackend
}

func (m *MockBackend) FetchPrinters(ctx context.Context, provider *domain.Provider) ([]domain.RemotePrinter, error) {
	args := m.Called(ctx, provider)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RemotePrinter), args.Error(1)
}

func (m *MockBackend) GenerateLabel(ctx context.Context, provider *domain.Provider, req domain.GenerateLabelRequest) (*domain.BarcodeLabel, error) {
	args := m.Called(ctx, provider, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BarcodeLabel), args.Error(1)
}

func (m *MockBackend) SendToPrinter(ctx context.Context, provider *domain.Provider, printer *domain.Printer, label *domain.BarcodeLabel, copies int) (string, error) {
	args := m.Called(ctx, provider, printer, label, copies)
	return args.String(0), args.Error(1)
}

type MockHookRunner struct {
	mock.Mock
}

func (m *MockHookRunner) Run(ctx context.Context, gctx *domain.GenerationContext) error {
	args := m.Called(ctx, gctx)
	return args.Error(0)
}
