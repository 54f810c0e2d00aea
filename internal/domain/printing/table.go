package printing

import (
	"strings"

	"github.com/printhub/backend/internal/domain/shared"
)

// LabelTable names an ERP table whose records can be printed as labels.
// Hooks declare applicability per table, and templates are bound to tables.
type LabelTable struct {
	shared.BaseEntity
	TableID string // stable ERP table identifier, e.g. "M_Product"
	Name    string
}

// NewLabelTable creates a label table registration
func NewLabelTable(tableID, name string) (*LabelTable, error) {
	if strings.TrimSpace(tableID) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Label table ID cannot be empty")
	}
	return &LabelTable{
		BaseEntity: shared.NewBaseEntity(),
		TableID:    strings.TrimSpace(tableID),
		Name:       name,
	}, nil
}
