package printing

import (
	"time"

	"github.com/printhub/backend/internal/domain/printing"
)

// SendLabelsRequest asks for labels of one or more records of a table to
// be printed on one printer. Params carries caller-supplied template
// parameters into the generation context.
type SendLabelsRequest struct {
	ProviderID string            `json:"provider_id" binding:"required"`
	PrinterID  string            `json:"printer_id" binding:"required"`
	TableID    string            `json:"table_id" binding:"required"`
	RecordIDs  []string          `json:"record_ids" binding:"required,min=1"`
	Copies     int               `json:"copies"`
	Params     map[string]string `json:"params"`
}

// LabelDispatchResult is the per-record outcome of a SendLabels call.
type LabelDispatchResult struct {
	RecordID string `json:"record_id"`
	JobID    string `json:"job_id,omitempty"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
}

// SendLabelsResponse lists the per-record outcomes; a batch partially
// failing is not an error at this level.
type SendLabelsResponse struct {
	Results   []LabelDispatchResult `json:"results"`
	SentCount int                   `json:"sent_count"`
}

// ReconcileResult reports what a printer catalog refresh changed.
type ReconcileResult struct {
	Created     int `json:"created"`
	Updated     int `json:"updated"`
	Inactivated int `json:"inactivated"`
}

// ProviderResponse is the read model of a provider.
type ProviderResponse struct {
	ID             string    `json:"id"`
	SearchKey      string    `json:"search_key"`
	Name           string    `json:"name"`
	Implementation string    `json:"implementation"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

// PrinterResponse is the read model of a printer.
type PrinterResponse struct {
	ID         string    `json:"id"`
	ProviderID string    `json:"provider_id"`
	ExternalID string    `json:"external_id"`
	Name       string    `json:"name"`
	IsDefault  bool      `json:"is_default"`
	IsActive   bool      `json:"is_active"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PrintJobResponse is the read model of a print job.
type PrintJobResponse struct {
	ID          string    `json:"id"`
	ProviderID  string    `json:"provider_id"`
	PrinterID   string    `json:"printer_id"`
	TableID     string    `json:"table_id"`
	RecordID    string    `json:"record_id"`
	ExternalRef string    `json:"external_ref,omitempty"`
	Status      string    `json:"status"`
	Error       string    `json:"error,omitempty"`
	Copies      int       `json:"copies"`
	CreatedAt   time.Time `json:"created_at"`
}

func toProviderResponse(p *printing.Provider) *ProviderResponse {
	return &ProviderResponse{
		ID:             p.ID.String(),
		SearchKey:      p.SearchKey,
		Name:           p.Name,
		Implementation: p.Implementation,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
	}
}

func toPrinterResponse(p *printing.Printer) *PrinterResponse {
	return &PrinterResponse{
		ID:         p.ID.String(),
		ProviderID: p.ProviderID.String(),
		ExternalID: p.ExternalID,
		Name:       p.Name,
		IsDefault:  p.IsDefault,
		IsActive:   p.IsActive,
		UpdatedAt:  p.UpdatedAt,
	}
}

func toPrintJobResponse(j *printing.PrintJob) *PrintJobResponse {
	return &PrintJobResponse{
		ID:          j.ID.String(),
		ProviderID:  j.ProviderID.String(),
		PrinterID:   j.PrinterID.String(),
		TableID:     j.TableID,
		RecordID:    j.RecordID,
		ExternalRef: j.ExternalRef,
		Status:      string(j.Status),
		Error:       j.ErrorMessage,
		Copies:      j.Copies,
		CreatedAt:   j.CreatedAt,
	}
}
