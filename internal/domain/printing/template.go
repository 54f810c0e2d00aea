package printing

import (
	"sort"
	"strings"

	"github.com/printhub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Template file extensions the renderer understands. HTML sources are
// compiled and rendered; PDF files are used as-is.
const (
	TemplateExtHTML = ".html"
	TemplateExtPDF  = ".pdf"
)

// LabelTemplate groups the template lines available for one label table.
type LabelTemplate struct {
	shared.BaseEntity
	TableID   uuid.UUID
	SearchKey string
	Name      string
	IsActive  bool
	Lines     []TemplateLine
}

// TemplateLine points at one template file. Location is a path that may
// start with a @basedesign@ or @<module>@ source-root token; SeqNo and
// IsDefault drive selection when a table has several lines.
type TemplateLine struct {
	shared.BaseEntity
	TemplateID uuid.UUID
	Location   string
	SeqNo      int
	IsDefault  bool
	IsActive   bool
}

// NewLabelTemplate creates a template for a label table
func NewLabelTemplate(tableID uuid.UUID, searchKey, name string) (*LabelTemplate, error) {
	if tableID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Template table ID cannot be empty")
	}
	if strings.TrimSpace(searchKey) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Template search key cannot be empty")
	}
	return &LabelTemplate{
		BaseEntity: shared.NewBaseEntity(),
		TableID:    tableID,
		SearchKey:  strings.TrimSpace(searchKey),
		Name:       name,
		IsActive:   true,
	}, nil
}

// AddLine appends a template line to the template.
func (t *LabelTemplate) AddLine(location string, seqNo int, isDefault bool) {
	t.Lines = append(t.Lines, TemplateLine{
		BaseEntity: shared.NewBaseEntity(),
		TemplateID: t.ID,
		Location:   location,
		SeqNo:      seqNo,
		IsDefault:  isDefault,
		IsActive:   true,
	})
}

// SelectTemplateLine picks the line to render from: active lines only,
// default-flagged lines ahead of the rest, ties broken by ascending
// sequence number. Returns false when no active line exists.
func SelectTemplateLine(lines []TemplateLine) (TemplateLine, bool) {
	active := make([]TemplateLine, 0, len(lines))
	for _, l := range lines {
		if l.IsActive {
			active = append(active, l)
		}
	}
	if len(active) == 0 {
		return TemplateLine{}, false
	}
	sort.SliceStable(active, func(i, j int) bool {
		if active[i].IsDefault != active[j].IsDefault {
			return active[i].IsDefault
		}
		return active[i].SeqNo < active[j].SeqNo
	})
	return active[0], true
}
