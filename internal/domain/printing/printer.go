package printing

import (
	"strings"

	"github.com/printhub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Printer is a physical or virtual printer known to a provider. Rows are
// reconciled against the remote catalog; the pair (ProviderID, ExternalID)
// is the identity used for matching.
type Printer struct {
	shared.BaseEntity
	ProviderID uuid.UUID
	ExternalID string // identifier assigned by the remote print service
	Name       string
	IsDefault  bool
	IsActive   bool
}

// NewPrinter creates a printer record for a provider
func NewPrinter(providerID uuid.UUID, externalID, name string, isDefault bool) (*Printer, error) {
	if providerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Printer provider ID cannot be empty")
	}
	if strings.TrimSpace(externalID) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Printer external ID cannot be empty")
	}
	return &Printer{
		BaseEntity: shared.NewBaseEntity(),
		ProviderID: providerID,
		ExternalID: strings.TrimSpace(externalID),
		Name:       name,
		IsDefault:  isDefault,
		IsActive:   true,
	}, nil
}

// ApplyRemote overwrites the local record's name and default flag with the
// remote catalog entry. The active flag is left alone: a printer an
// operator deactivated stays deactivated even while the remote catalog
// keeps reporting it.
func (p *Printer) ApplyRemote(remote RemotePrinter) {
	p.Name = remote.Name
	p.IsDefault = remote.IsDefault
	p.Touch()
}

// Deactivate marks the printer as no longer present in the remote catalog.
func (p *Printer) Deactivate() {
	p.IsActive = false
	p.Touch()
}
