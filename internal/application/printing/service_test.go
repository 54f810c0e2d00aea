package printing

import (
	"context"
	"errors"
	"testing"

	domain "github.com/printhub/backend/internal/domain/printing"
	"github.com/printhub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serviceFixture struct {
	providerRepo *MockProviderRepository
	printerRepo  *MockPrinterRepository
	tableRepo    *MockLabelTableRepository
	templateRepo *MockTemplateRepository
	jobRepo      *MockPrintJobRepository
	resolver     *MockBackendResolver
	backend      *MockBackend
	hooks        *MockHookRunner
	service      *PrintService

	provider *domain.Provider
	printer  *domain.Printer
	table    *domain.LabelTable
	template *domain.LabelTemplate
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	f := &serviceFixture{
		providerRepo: new(MockProviderRepository),
		printerRepo:  new(MockPrinterRepository),
		tableRepo:    new(MockLabelTableRepository),
		templateRepo: new(MockTemplateRepository),
		jobRepo:      new(MockPrintJobRepository),
		resolver:     new(MockBackendResolver),
		backend:      new(MockBackend),
		hooks:        new(MockHookRunner),
	}

	var err error
	f.provider, err = domain.NewProvider("printnode", "PrintNode", "printnode")
	require.NoError(t, err)
	f.printer, err = domain.NewPrinter(f.provider.ID, "71234567", "Warehouse Zebra", true)
	require.NoError(t, err)
	f.table, err = domain.NewLabelTable("M_Product", "Products")
	require.NoError(t, err)
	f.template, err = domain.NewLabelTemplate(f.table.ID, "product-label", "Product Label")
	require.NoError(t, err)
	f.template.AddLine("@basedesign@/labels/product.html", 10, true)

	f.service = NewPrintService(
		f.providerRepo, f.printerRepo, f.tableRepo, f.templateRepo, f.jobRepo,
		f.resolver, f.hooks,
		NewPrinterReconciler(f.printerRepo, nil),
		nil, nil,
	)
	return f
}

func (f *serviceFixture) expectHappyLookups(ctx context.Context) {
	f.providerRepo.On("FindByID", ctx, f.provider.ID).Return(f.provider, nil)
	f.resolver.On("Resolve", f.provider).Return(f.backend, nil)
	f.printerRepo.On("FindByID", ctx, f.printer.ID).Return(f.printer, nil)
	f.tableRepo.On("FindByTableID", ctx, "M_Product").Return(f.table, nil)
	f.templateRepo.On("FindActiveByTable", ctx, f.table.ID).Return([]domain.LabelTemplate{*f.template}, nil)
}

func TestSendLabels(t *testing.T) {
	ctx := context.Background()
	label := &domain.BarcodeLabel{FileName: "M_Product-rec-1.pdf", ContentType: "application/pdf", Data: []byte("%PDF")}

	t.Run("sends one label per record", func(t *testing.T) {
		f := newServiceFixture(t)
		f.expectHappyLookups(ctx)
		f.hooks.On("Run", ctx, mock.AnythingOfType("*printing.GenerationContext")).Return(nil)
		f.backend.On("GenerateLabel", ctx, f.provider, mock.AnythingOfType("printing.GenerateLabelRequest")).Return(label, nil)
		f.backend.On("SendToPrinter", ctx, f.provider, f.printer, label, 2).Return("473", nil)
		f.jobRepo.On("Save", ctx, mock.MatchedBy(func(j *domain.PrintJob) bool {
			return j.Status == domain.PrintJobStatusSent && j.ExternalRef == "473"
		})).Return(nil).Twice()

		resp, err := f.service.SendLabels(ctx, SendLabelsRequest{
			ProviderID: f.provider.ID.String(),
			PrinterID:  f.printer.ID.String(),
			TableID:    "M_Product",
			RecordIDs:  []string{"rec-1", "rec-2"},
			Copies:     2,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.SentCount)
		require.Len(t, resp.Results, 2)
		assert.Equal(t, "473", resp.Results[0].JobID)
		f.jobRepo.AssertExpectations(t)
	})

	t.Run("a failing record does not stop the batch", func(t *testing.T) {
		f := newServiceFixture(t)
		f.expectHappyLookups(ctx)
		f.hooks.On("Run", ctx, mock.AnythingOfType("*printing.GenerationContext")).Return(nil)
		f.backend.On("GenerateLabel", ctx, f.provider, mock.MatchedBy(func(req domain.GenerateLabelRequest) bool {
			return req.RecordID == "bad"
		})).Return(nil, errors.New("template blew up"))
		f.backend.On("GenerateLabel", ctx, f.provider, mock.MatchedBy(func(req domain.GenerateLabelRequest) bool {
			return req.RecordID == "good"
		})).Return(label, nil)
		f.backend.On("SendToPrinter", ctx, f.provider, f.printer, label, 1).Return("474", nil)
		f.jobRepo.On("Save", ctx, mock.AnythingOfType("*printing.PrintJob")).Return(nil)

		resp, err := f.service.SendLabels(ctx, SendLabelsRequest{
			ProviderID: f.provider.ID.String(),
			PrinterID:  f.printer.ID.String(),
			TableID:    "M_Product",
			RecordIDs:  []string{"bad", "good"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.SentCount)
		assert.Equal(t, string(domain.PrintJobStatusFailed), resp.Results[0].Status)
		assert.Contains(t, resp.Results[0].Error, "template blew up")
		assert.Equal(t, string(domain.PrintJobStatusSent), resp.Results[1].Status)
	})

	t.Run("hook failure fails the record", func(t *testing.T) {
		f := newServiceFixture(t)
		f.expectHappyLookups(ctx)
		f.hooks.On("Run", ctx, mock.AnythingOfType("*printing.GenerationContext")).Return(errors.New("veto"))
		f.jobRepo.On("Save", ctx, mock.MatchedBy(func(j *domain.PrintJob) bool {
			return j.Status == domain.PrintJobStatusFailed
		})).Return(nil)

		resp, err := f.service.SendLabels(ctx, SendLabelsRequest{
			ProviderID: f.provider.ID.String(),
			PrinterID:  f.printer.ID.String(),
			TableID:    "M_Product",
			RecordIDs:  []string{"rec-1"},
		})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.SentCount)
		f.backend.AssertNotCalled(t, "GenerateLabel", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("hook parameters reach the backend", func(t *testing.T) {
		f := newServiceFixture(t)
		f.expectHappyLookups(ctx)
		f.hooks.On("Run", ctx, mock.AnythingOfType("*printing.GenerationContext")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.GenerationContext).AddParameter("Barcode", "4006381333931")
		}).Return(nil)
		f.backend.On("GenerateLabel", ctx, f.provider, mock.MatchedBy(func(req domain.GenerateLabelRequest) bool {
			return req.Parameters["Barcode"] == "4006381333931"
		})).Return(label, nil)
		f.backend.On("SendToPrinter", ctx, f.provider, f.printer, label, 1).Return("475", nil)
		f.jobRepo.On("Save", ctx, mock.AnythingOfType("*printing.PrintJob")).Return(nil)

		_, err := f.service.SendLabels(ctx, SendLabelsRequest{
			ProviderID: f.provider.ID.String(),
			PrinterID:  f.printer.ID.String(),
			TableID:    "M_Product",
			RecordIDs:  []string{"rec-1"},
		})
		require.NoError(t, err)
		f.backend.AssertExpectations(t)
	})

	t.Run("inactive provider is rejected", func(t *testing.T) {
		f := newServiceFixture(t)
		f.provider.IsActive = false
		f.providerRepo.On("FindByID", ctx, f.provider.ID).Return(f.provider, nil)

		_, err := f.service.SendLabels(ctx, SendLabelsRequest{
			ProviderID: f.provider.ID.String(),
			PrinterID:  f.printer.ID.String(),
			TableID:    "M_Product",
			RecordIDs:  []string{"rec-1"},
		})
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "INVALID_STATE", derr.Code)
	})

	t.Run("printer of another provider is rejected", func(t *testing.T) {
		f := newServiceFixture(t)
		stranger, err := domain.NewPrinter(uuid.New(), "99", "Stranger", false)
		require.NoError(t, err)
		f.providerRepo.On("FindByID", ctx, f.provider.ID).Return(f.provider, nil)
		f.resolver.On("Resolve", f.provider).Return(f.backend, nil)
		f.printerRepo.On("FindByID", ctx, stranger.ID).Return(stranger, nil)

		_, err = f.service.SendLabels(ctx, SendLabelsRequest{
			ProviderID: f.provider.ID.String(),
			PrinterID:  stranger.ID.String(),
			TableID:    "M_Product",
			RecordIDs:  []string{"rec-1"},
		})
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "INVALID_INPUT", derr.Code)
	})

	t.Run("unregistered table is a print location failure", func(t *testing.T) {
		f := newServiceFixture(t)
		f.providerRepo.On("FindByID", ctx, f.provider.ID).Return(f.provider, nil)
		f.resolver.On("Resolve", f.provider).Return(f.backend, nil)
		f.printerRepo.On("FindByID", ctx, f.printer.ID).Return(f.printer, nil)
		f.tableRepo.On("FindByTableID", ctx, "X_Unknown").Return(nil, shared.ErrNotFound)

		_, err := f.service.SendLabels(ctx, SendLabelsRequest{
			ProviderID: f.provider.ID.String(),
			PrinterID:  f.printer.ID.String(),
			TableID:    "X_Unknown",
			RecordIDs:  []string{"rec-1"},
		})
		require.Error(t, err)
		assert.True(t, domain.IsProviderError(err))
		assert.Contains(t, err.Error(), "print location not found")
		assert.Contains(t, err.Error(), "X_Unknown")
	})

	t.Run("table without active template lines is a print location failure", func(t *testing.T) {
		f := newServiceFixture(t)
		f.providerRepo.On("FindByID", ctx, f.provider.ID).Return(f.provider, nil)
		f.resolver.On("Resolve", f.provider).Return(f.backend, nil)
		f.printerRepo.On("FindByID", ctx, f.printer.ID).Return(f.printer, nil)
		f.tableRepo.On("FindByTableID", ctx, "M_Product").Return(f.table, nil)
		f.templateRepo.On("FindActiveByTable", ctx, f.table.ID).Return([]domain.LabelTemplate{}, nil)

		_, err := f.service.SendLabels(ctx, SendLabelsRequest{
			ProviderID: f.provider.ID.String(),
			PrinterID:  f.printer.ID.String(),
			TableID:    "M_Product",
			RecordIDs:  []string{"rec-1"},
		})
		require.Error(t, err)
		assert.True(t, domain.IsProviderError(err))
		assert.Contains(t, err.Error(), "print location not found")
	})

	t.Run("negative copies are rejected", func(t *testing.T) {
		f := newServiceFixture(t)
		f.expectHappyLookups(ctx)

		_, err := f.service.SendLabels(ctx, SendLabelsRequest{
			ProviderID: f.provider.ID.String(),
			PrinterID:  f.printer.ID.String(),
			TableID:    "M_Product",
			RecordIDs:  []string{"rec-1"},
			Copies:     -1,
		})
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "INVALID_INPUT", derr.Code)
		f.jobRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("blank caller parameters are rejected", func(t *testing.T) {
		f := newServiceFixture(t)
		f.expectHappyLookups(ctx)

		_, err := f.service.SendLabels(ctx, SendLabelsRequest{
			ProviderID: f.provider.ID.String(),
			PrinterID:  f.printer.ID.String(),
			TableID:    "M_Product",
			RecordIDs:  []string{"rec-1"},
			Params:     map[string]string{"LOT": "  "},
		})
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "INVALID_INPUT", derr.Code)
	})

	t.Run("caller parameters reach the backend", func(t *testing.T) {
		f := newServiceFixture(t)
		f.expectHappyLookups(ctx)
		f.hooks.On("Run", ctx, mock.MatchedBy(func(gctx *domain.GenerationContext) bool {
			raw, ok := gctx.CallerParameter("LOT")
			return ok && raw == "L-2026-08" && gctx.Line.Location == "@basedesign@/labels/product.html"
		})).Return(nil)
		f.backend.On("GenerateLabel", ctx, f.provider, mock.MatchedBy(func(req domain.GenerateLabelRequest) bool {
			return req.Parameters["LOT"] == "L-2026-08"
		})).Return(label, nil)
		f.backend.On("SendToPrinter", ctx, f.provider, f.printer, label, 1).Return("476", nil)
		f.jobRepo.On("Save", ctx, mock.AnythingOfType("*printing.PrintJob")).Return(nil)

		_, err := f.service.SendLabels(ctx, SendLabelsRequest{
			ProviderID: f.provider.ID.String(),
			PrinterID:  f.printer.ID.String(),
			TableID:    "M_Product",
			RecordIDs:  []string{"rec-1"},
			Params:     map[string]string{"LOT": "L-2026-08"},
		})
		require.NoError(t, err)
		f.backend.AssertExpectations(t)
	})

	t.Run("unresolvable backend fails the request", func(t *testing.T) {
		f := newServiceFixture(t)
		f.providerRepo.On("FindByID", ctx, f.provider.ID).Return(f.provider, nil)
		f.resolver.On("Resolve", f.provider).Return(nil, errors.New("no backend registered"))

		_, err := f.service.SendLabels(ctx, SendLabelsRequest{
			ProviderID: f.provider.ID.String(),
			PrinterID:  f.printer.ID.String(),
			TableID:    "M_Product",
			RecordIDs:  []string{"rec-1"},
		})
		assert.Error(t, err)
	})
}

func TestRefreshPrinters(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches catalog and reconciles", func(t *testing.T) {
		f := newServiceFixture(t)
		f.providerRepo.On("FindByID", ctx, f.provider.ID).Return(f.provider, nil)
		f.resolver.On("Resolve", f.provider).Return(f.backend, nil)
		f.backend.On("FetchPrinters", ctx, f.provider).Return([]domain.RemotePrinter{
			{ID: "1", Name: "Zebra", IsDefault: true},
		}, nil)
		f.printerRepo.On("FindByProvider", ctx, f.provider.ID).Return([]domain.Printer{}, nil)
		f.printerRepo.On("Save", ctx, mock.AnythingOfType("*printing.Printer")).Return(nil)

		result, err := f.service.RefreshPrinters(ctx, f.provider.ID.String())
		require.NoError(t, err)
		assert.Equal(t, &ReconcileResult{Created: 1}, result)
	})

	t.Run("fetch failure leaves local rows untouched", func(t *testing.T) {
		f := newServiceFixture(t)
		f.providerRepo.On("FindByID", ctx, f.provider.ID).Return(f.provider, nil)
		f.resolver.On("Resolve", f.provider).Return(f.backend, nil)
		f.backend.On("FetchPrinters", ctx, f.provider).Return(nil, errors.New("HTTP 503"))

		_, err := f.service.RefreshPrinters(ctx, f.provider.ID.String())
		require.Error(t, err)
		f.printerRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("unknown provider fails", func(t *testing.T) {
		f := newServiceFixture(t)
		id := uuid.New()
		f.providerRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := f.service.RefreshPrinters(ctx, id.String())
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "NOT_FOUND", derr.Code)
	})

	t.Run("malformed provider ID fails", func(t *testing.T) {
		f := newServiceFixture(t)
		_, err := f.service.RefreshPrinters(ctx, "not-a-uuid")
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "INVALID_INPUT", derr.Code)
	})
}
