package printing

import (
	"context"
	"fmt"

	"github.com/printhub/backend/internal/domain/printing"
	"go.uber.org/zap"
)

// PrinterReconciler replaces the local printer rows of a provider with the
// remote catalog: remote entries are upserted by external ID, and active
// local rows absent from the catalog are deactivated.
type PrinterReconciler struct {
	printerRepo printing.PrinterRepository
	logger      *zap.Logger
}

// NewPrinterReconciler creates a printer reconciler
func NewPrinterReconciler(printerRepo printing.PrinterRepository, logger *zap.Logger) *PrinterReconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PrinterReconciler{printerRepo: printerRepo, logger: logger}
}

// Reconcile applies the remote catalog to the provider's local rows. An
// empty catalog deactivates every active printer of the provider; the
// remote service is trusted as the source of truth.
func (r *PrinterReconciler) Reconcile(ctx context.Context, provider *printing.Provider, remote []printing.RemotePrinter) (*ReconcileResult, error) {
	existing, err := r.printerRepo.FindByProvider(ctx, provider.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load printers: %w", err)
	}
	byExternalID := make(map[string]*printing.Printer, len(existing))
	for i := range existing {
		byExternalID[existing[i].ExternalID] = &existing[i]
	}

	result := &ReconcileResult{}
	seen := make(map[string]struct{}, len(remote))
	for _, rp := range remote {
		seen[rp.ID] = struct{}{}

		if local, ok := byExternalID[rp.ID]; ok {
			local.ApplyRemote(rp)
			if err := r.printerRepo.Save(ctx, local); err != nil {
				return nil, fmt.Errorf("failed to update printer %q: %w", rp.ID, err)
			}
			result.Updated++
			continue
		}

		printer, err := printing.NewPrinter(provider.ID, rp.ID, rp.Name, rp.IsDefault)
		if err != nil {
			return nil, fmt.Errorf("invalid remote printer %q: %w", rp.ID, err)
		}
		if err := r.printerRepo.Save(ctx, printer); err != nil {
			return nil, fmt.Errorf("failed to create printer %q: %w", rp.ID, err)
		}
		result.Created++
	}

	for i := range existing {
		local := &existing[i]
		if !local.IsActive {
			continue
		}
		if _, ok := seen[local.ExternalID]; ok {
			continue
		}
		local.Deactivate()
		if err := r.printerRepo.Save(ctx, local); err != nil {
			return nil, fmt.Errorf("failed to deactivate printer %q: %w", local.ExternalID, err)
		}
		result.Inactivated++
	}

	if len(remote) == 0 && result.Inactivated > 0 {
		r.logger.Warn("remote catalog is empty, all printers deactivated",
			zap.String("provider", provider.SearchKey),
			zap.Int("inactivated", result.Inactivated))
	}

	r.logger.Info("printer catalog reconciled",
		zap.String("provider", provider.SearchKey),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Int("inactivated", result.Inactivated))
	return result, nil
}
