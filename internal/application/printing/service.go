package printing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/printhub/backend/internal/domain/printing"
	"github.com/printhub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BackendResolver builds the connector configured on a provider.
type BackendResolver interface {
	Resolve(provider *printing.Provider) (printing.Backend, error)
}

// HookRunner executes the label generation hooks for one record.
type HookRunner interface {
	Run(ctx context.Context, gctx *printing.GenerationContext) error
}

// LabelArchive keeps copies of generated label artifacts for auditing.
type LabelArchive interface {
	// Store persists the artifact under the given key
	Store(ctx context.Context, key, contentType string, data []byte) error

	// DownloadURL returns a time-limited URL for a stored artifact
	DownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, time.Time, error)
}

// PrintService handles label printing business operations
type PrintService struct {
	providerRepo printing.ProviderRepository
	printerRepo  printing.PrinterRepository
	tableRepo    printing.LabelTableRepository
	templateRepo printing.TemplateRepository
	jobRepo      printing.PrintJobRepository
	resolver     BackendResolver
	hooks        HookRunner
	reconciler   *PrinterReconciler
	archive      LabelArchive
	logger       *zap.Logger
}

// NewPrintService creates a new PrintService. The archive may be nil;
// labels are then only sent, not retained.
func NewPrintService(
	providerRepo printing.ProviderRepository,
	printerRepo printing.PrinterRepository,
	tableRepo printing.LabelTableRepository,
	templateRepo printing.TemplateRepository,
	jobRepo printing.PrintJobRepository,
	resolver BackendResolver,
	hooks HookRunner,
	reconciler *PrinterReconciler,
	archive LabelArchive,
	logger *zap.Logger,
) *PrintService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PrintService{
		providerRepo: providerRepo,
		printerRepo:  printerRepo,
		tableRepo:    tableRepo,
		templateRepo: templateRepo,
		jobRepo:      jobRepo,
		resolver:     resolver,
		hooks:        hooks,
		reconciler:   reconciler,
		archive:      archive,
		logger:       logger,
	}
}

// SendLabels generates and dispatches one label per record. Records are
// processed independently: a failing record is reported in its result and
// the batch continues.
func (s *PrintService) SendLabels(ctx context.Context, req SendLabelsRequest) (*SendLabelsResponse, error) {
	provider, backend, err := s.resolveProvider(ctx, req.ProviderID)
	if err != nil {
		return nil, err
	}

	printerID, err := uuid.Parse(req.PrinterID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid printer ID")
	}
	printer, err := s.printerRepo.FindByID(ctx, printerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Printer not found")
		}
		return nil, fmt.Errorf("failed to load printer: %w", err)
	}
	if printer.ProviderID != provider.ID {
		return nil, shared.NewDomainError("INVALID_INPUT", "Printer does not belong to the provider")
	}
	if !printer.IsActive {
		return nil, shared.NewDomainError("INVALID_STATE", "Printer is not active")
	}

	line, err := s.resolveTemplateLine(ctx, req.TableID)
	if err != nil {
		return nil, err
	}

	if req.Copies < 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Copies must be positive")
	}
	copies := req.Copies
	if copies == 0 {
		copies = 1
	}
	for key, value := range req.Params {
		if strings.TrimSpace(key) == "" || strings.TrimSpace(value) == "" {
			return nil, shared.NewDomainError("INVALID_INPUT", "Label parameters must have non-blank keys and values")
		}
	}

	resp := &SendLabelsResponse{Results: make([]LabelDispatchResult, 0, len(req.RecordIDs))}
	for _, recordID := range req.RecordIDs {
		result := s.dispatchRecord(ctx, provider, backend, printer, line, req.TableID, recordID, copies, req.Params)
		if result.Status == string(printing.PrintJobStatusSent) {
			resp.SentCount++
		}
		resp.Results = append(resp.Results, result)
	}
	return resp, nil
}

// dispatchRecord runs the hook pipeline, generates the label and submits
// it, recording the outcome as a print job.
func (s *PrintService) dispatchRecord(ctx context.Context, provider *printing.Provider, backend printing.Backend, printer *printing.Printer, line printing.TemplateLine, tableID, recordID string, copies int, params map[string]string) LabelDispatchResult {
	job := printing.NewPrintJob(provider.ID, printer.ID, tableID, recordID, copies)

	jobID, err := s.sendOne(ctx, provider, backend, printer, line, tableID, recordID, copies, params)
	if err != nil {
		job.MarkFailed(err)
		s.logger.Warn("label dispatch failed",
			zap.String("table_id", tableID),
			zap.String("record_id", recordID),
			zap.Error(err))
	} else {
		job.MarkSent(jobID)
	}

	if saveErr := s.jobRepo.Save(ctx, job); saveErr != nil {
		s.logger.Error("failed to record print job",
			zap.String("record_id", recordID),
			zap.Error(saveErr))
	}

	result := LabelDispatchResult{RecordID: recordID, Status: string(job.Status)}
	if err != nil {
		result.Error = err.Error()
	} else {
		result.JobID = jobID
	}
	return result
}

func (s *PrintService) sendOne(ctx context.Context, provider *printing.Provider, backend printing.Backend, printer *printing.Printer, line printing.TemplateLine, tableID, recordID string, copies int, params map[string]string) (string, error) {
	gctx := printing.NewGenerationContext(provider, printer, tableID, recordID, line, copies, params)
	if s.hooks != nil {
		if err := s.hooks.Run(ctx, gctx); err != nil {
			return "", err
		}
	}

	label, err := backend.GenerateLabel(ctx, provider, printing.GenerateLabelRequest{
		TableID:    tableID,
		RecordID:   recordID,
		Line:       line,
		Parameters: gctx.Parameters(),
	})
	if err != nil {
		return "", err
	}

	if s.archive != nil {
		key := fmt.Sprintf("labels/%s/%s", tableID, label.FileName)
		if err := s.archive.Store(ctx, key, label.ContentType, label.Data); err != nil {
			s.logger.Warn("failed to archive label",
				zap.String("key", key),
				zap.Error(err))
		}
	}

	return backend.SendToPrinter(ctx, provider, printer, label, copies)
}

// RefreshPrinters pulls the provider's remote printer catalog and
// reconciles the local rows against it.
func (s *PrintService) RefreshPrinters(ctx context.Context, providerID string) (*ReconcileResult, error) {
	provider, backend, err := s.resolveProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	remote, err := backend.FetchPrinters(ctx, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch printer catalog: %w", err)
	}
	return s.reconciler.Reconcile(ctx, provider, remote)
}

// resolveProvider loads an active provider and its configured backend.
func (s *PrintService) resolveProvider(ctx context.Context, providerID string) (*printing.Provider, printing.Backend, error) {
	id, err := uuid.Parse(providerID)
	if err != nil {
		return nil, nil, shared.NewDomainError("INVALID_INPUT", "Invalid provider ID")
	}
	provider, err := s.providerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil, shared.NewDomainError("NOT_FOUND", "Provider not found")
		}
		return nil, nil, fmt.Errorf("failed to load provider: %w", err)
	}
	if !provider.IsActive {
		return nil, nil, shared.NewDomainError("INVALID_STATE", "Provider is not active")
	}

	backend, err := s.resolver.Resolve(provider)
	if err != nil {
		return nil, nil, err
	}
	return provider, backend, nil
}

// resolveTemplateLine picks the template line to print for a table. A
// table without a usable print location is a configuration fault on the
// provider side, so both the missing-table and the zero-lines case are
// surfaced as ProviderErrors.
func (s *PrintService) resolveTemplateLine(ctx context.Context, tableID string) (printing.TemplateLine, error) {
	table, err := s.tableRepo.FindByTableID(ctx, tableID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return printing.TemplateLine{}, printing.NewProviderErrorf("print location not found for table %q", tableID)
		}
		return printing.TemplateLine{}, fmt.Errorf("failed to load label table: %w", err)
	}

	templates, err := s.templateRepo.FindActiveByTable(ctx, table.ID)
	if err != nil {
		return printing.TemplateLine{}, fmt.Errorf("failed to load templates: %w", err)
	}
	var lines []printing.TemplateLine
	for _, tmpl := range templates {
		lines = append(lines, tmpl.Lines...)
	}
	line, ok := printing.SelectTemplateLine(lines)
	if !ok {
		return printing.TemplateLine{}, printing.NewProviderErrorf("print location not found for table %q: no active template line", tableID)
	}
	return line, nil
}

// ListProviders returns all providers.
func (s *PrintService) ListProviders(ctx context.Context, filter shared.Filter) ([]ProviderResponse, error) {
	providers, err := s.providerRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}
	out := make([]ProviderResponse, 0, len(providers))
	for i := range providers {
		out = append(out, *toProviderResponse(&providers[i]))
	}
	return out, nil
}

// ListPrinters returns the printers of one provider.
func (s *PrintService) ListPrinters(ctx context.Context, providerID string) ([]PrinterResponse, error) {
	id, err := uuid.Parse(providerID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid provider ID")
	}
	printers, err := s.printerRepo.FindByProvider(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list printers: %w", err)
	}
	out := make([]PrinterResponse, 0, len(printers))
	for i := range printers {
		out = append(out, *toPrinterResponse(&printers[i]))
	}
	return out, nil
}

// ListJobs returns the print jobs of one provider.
func (s *PrintService) ListJobs(ctx context.Context, providerID string, filter shared.Filter) ([]PrintJobResponse, error) {
	id, err := uuid.Parse(providerID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid provider ID")
	}
	jobs, err := s.jobRepo.FindByProvider(ctx, id, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list print jobs: %w", err)
	}
	out := make([]PrintJobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, *toPrintJobResponse(&jobs[i]))
	}
	return out, nil
}
