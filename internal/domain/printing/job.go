package printing

import (
	"github.com/printhub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PrintJobStatus is the outcome of one label dispatch.
type PrintJobStatus string

const (
	PrintJobStatusSent   PrintJobStatus = "SENT"
	PrintJobStatusFailed PrintJobStatus = "FAILED"
)

// PrintJob records one attempt to send a generated label to a printer.
type PrintJob struct {
	shared.BaseEntity
	ProviderID   uuid.UUID
	PrinterID    uuid.UUID
	TableID      string
	RecordID     string
	ExternalRef  string // job identifier returned by the remote service
	Status       PrintJobStatus
	ErrorMessage string
	Copies       int
}

// NewPrintJob creates a pending job record for one record dispatch
func NewPrintJob(providerID, printerID uuid.UUID, tableID, recordID string, copies int) *PrintJob {
	if copies < 1 {
		copies = 1
	}
	return &PrintJob{
		BaseEntity: shared.NewBaseEntity(),
		ProviderID: providerID,
		PrinterID:  printerID,
		TableID:    tableID,
		RecordID:   recordID,
		Copies:     copies,
	}
}

// MarkSent records a successful dispatch with the remote job reference.
func (j *PrintJob) MarkSent(externalRef string) {
	j.Status = PrintJobStatusSent
	j.ExternalRef = externalRef
	j.ErrorMessage = ""
	j.Touch()
}

// MarkFailed records a failed dispatch.
func (j *PrintJob) MarkFailed(err error) {
	j.Status = PrintJobStatusFailed
	if err != nil {
		j.ErrorMessage = err.Error()
	}
	j.Touch()
}
