package models

import (
	"time"

	"github.com/printhub/backend/internal/domain/printing"
	"github.com/printhub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProviderModel is the GORM model for print_providers table
type ProviderModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	SearchKey      string    `gorm:"column:search_key;type:varchar(60);not null;uniqueIndex"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Implementation string    `gorm:"type:varchar(200)"`
	IsActive       bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`

	Params []ProviderParamModel `gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ProviderModel
func (ProviderModel) TableName() string {
	return "print_providers"
}

// ProviderParamModel is the GORM model for print_provider_params table
type ProviderParamModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	ProviderID uuid.UUID `gorm:"column:provider_id;type:uuid;not null;index"`
	SearchKey  string    `gorm:"column:search_key;type:varchar(60);not null"`
	Content    string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for ProviderParamModel
func (ProviderParamModel) TableName() string {
	return "print_provider_params"
}

// ToDomain converts ProviderModel to domain Provider
func (m *ProviderModel) ToDomain() *printing.Provider {
	provider := &printing.Provider{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		SearchKey:      m.SearchKey,
		Name:           m.Name,
		Implementation: m.Implementation,
		IsActive:       m.IsActive,
	}
	for _, p := range m.Params {
		provider.Params = append(provider.Params, printing.ProviderParam{
			BaseEntity: shared.BaseEntity{
				ID:        p.ID,
				CreatedAt: p.CreatedAt,
				UpdatedAt: p.UpdatedAt,
			},
			ProviderID: p.ProviderID,
			SearchKey:  p.SearchKey,
			Content:    p.Content,
		})
	}
	return provider
}

// ProviderModelFromDomain creates a ProviderModel from domain Provider
func ProviderModelFromDomain(p *printing.Provider) *ProviderModel {
	model := &ProviderModel{
		ID:             p.ID,
		SearchKey:      p.SearchKey,
		Name:           p.Name,
		Implementation: p.Implementation,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	for _, param := range p.Params {
		model.Params = append(model.Params, ProviderParamModel{
			ID:         param.ID,
			ProviderID: param.ProviderID,
			SearchKey:  param.SearchKey,
			Content:    param.Content,
			CreatedAt:  param.CreatedAt,
			UpdatedAt:  param.UpdatedAt,
		})
	}
	return model
}

// PrinterModel is the GORM model for printers table
type PrinterModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	ProviderID uuid.UUID `gorm:"column:provider_id;type:uuid;not null;uniqueIndex:idx_printers_provider_external"`
	ExternalID string    `gorm:"column:external_id;type:varchar(100);not null;uniqueIndex:idx_printers_provider_external"`
	Name       string    `gorm:"type:varchar(100)"`
	IsDefault  bool      `gorm:"column:is_default;not null;default:false"`
	IsActive   bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for PrinterModel
func (PrinterModel) TableName() string {
	return "printers"
}

// ToDomain converts PrinterModel to domain Printer
func (m *PrinterModel) ToDomain() *printing.Printer {
	return &printing.Printer{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		ProviderID: m.ProviderID,
		ExternalID: m.ExternalID,
		Name:       m.Name,
		IsDefault:  m.IsDefault,
		IsActive:   m.IsActive,
	}
}

// PrinterModelFromDomain creates a PrinterModel from domain Printer
func PrinterModelFromDomain(p *printing.Printer) *PrinterModel {
	return &PrinterModel{
		ID:         p.ID,
		ProviderID: p.ProviderID,
		ExternalID: p.ExternalID,
		Name:       p.Name,
		IsDefault:  p.IsDefault,
		IsActive:   p.IsActive,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// LabelTableModel is the GORM model for label_tables table
type LabelTableModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	TableID   string    `gorm:"column:table_id;type:varchar(60);not null;uniqueIndex"`
	Name      string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for LabelTableModel
func (LabelTableModel) TableName() string {
	return "label_tables"
}

// ToDomain converts LabelTableModel to domain LabelTable
func (m *LabelTableModel) ToDomain() *printing.LabelTable {
	return &printing.LabelTable{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		TableID: m.TableID,
		Name:    m.Name,
	}
}

// LabelTableModelFromDomain creates a LabelTableModel from domain LabelTable
func LabelTableModelFromDomain(t *printing.LabelTable) *LabelTableModel {
	return &LabelTableModel{
		ID:        t.ID,
		TableID:   t.TableID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// LabelTemplateModel is the GORM model for label_templates table
type LabelTemplateModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	TableID   uuid.UUID `gorm:"column:table_id;type:uuid;not null;index"`
	SearchKey string    `gorm:"column:search_key;type:varchar(60);not null"`
	Name      string    `gorm:"type:varchar(100)"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Lines []TemplateLineModel `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for LabelTemplateModel
func (LabelTemplateModel) TableName() string {
	return "label_templates"
}

// TemplateLineModel is the GORM model for label_template_lines table
type TemplateLineModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	TemplateID uuid.UUID `gorm:"column:template_id;type:uuid;not null;index"`
	Location   string    `gorm:"type:varchar(500);not null"`
	SeqNo      int       `gorm:"column:seq_no;not null;default:10"`
	IsDefault  bool      `gorm:"column:is_default;not null;default:false"`
	IsActive   bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for TemplateLineModel
func (TemplateLineModel) TableName() string {
	return "label_template_lines"
}

// ToDomain converts LabelTemplateModel to domain LabelTemplate
func (m *LabelTemplateModel) ToDomain() *printing.LabelTemplate {
	tmpl := &printing.LabelTemplate{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		TableID:   m.TableID,
		SearchKey: m.SearchKey,
		Name:      m.Name,
		IsActive:  m.IsActive,
	}
	for _, l := range m.Lines {
		tmpl.Lines = append(tmpl.Lines, printing.TemplateLine{
			BaseEntity: shared.BaseEntity{
				ID:        l.ID,
				CreatedAt: l.CreatedAt,
				UpdatedAt: l.UpdatedAt,
			},
			TemplateID: l.TemplateID,
			Location:   l.Location,
			SeqNo:      l.SeqNo,
			IsDefault:  l.IsDefault,
			IsActive:   l.IsActive,
		})
	}
	return tmpl
}

// LabelTemplateModelFromDomain creates a LabelTemplateModel from domain LabelTemplate
func LabelTemplateModelFromDomain(t *printing.LabelTemplate) *LabelTemplateModel {
	model := &LabelTemplateModel{
		ID:        t.ID,
		TableID:   t.TableID,
		SearchKey: t.SearchKey,
		Name:      t.Name,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	for _, l := range t.Lines {
		model.Lines = append(model.Lines, TemplateLineModel{
			ID:         l.ID,
			TemplateID: l.TemplateID,
			Location:   l.Location,
			SeqNo:      l.SeqNo,
			IsDefault:  l.IsDefault,
			IsActive:   l.IsActive,
			CreatedAt:  l.CreatedAt,
			UpdatedAt:  l.UpdatedAt,
		})
	}
	return model
}

// PrintJobModel is the GORM model for print_jobs table
type PrintJobModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	ProviderID   uuid.UUID `gorm:"column:provider_id;type:uuid;not null;index"`
	PrinterID    uuid.UUID `gorm:"column:printer_id;type:uuid;not null;index"`
	TableID      string    `gorm:"column:table_id;type:varchar(60);not null"`
	RecordID     string    `gorm:"column:record_id;type:varchar(100);not null"`
	ExternalRef  string    `gorm:"column:external_ref;type:varchar(250)"`
	Status       string    `gorm:"type:varchar(20);not null"`
	ErrorMessage string    `gorm:"column:error_message;type:text"`
	Copies       int       `gorm:"not null;default:1"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for PrintJobModel
func (PrintJobModel) TableName() string {
	return "print_jobs"
}

// ToDomain converts PrintJobModel to domain PrintJob
func (m *PrintJobModel) ToDomain() *printing.PrintJob {
	return &printing.PrintJob{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		ProviderID:   m.ProviderID,
		PrinterID:    m.PrinterID,
		TableID:      m.TableID,
		RecordID:     m.RecordID,
		ExternalRef:  m.ExternalRef,
		Status:       printing.PrintJobStatus(m.Status),
		ErrorMessage: m.ErrorMessage,
		Copies:       m.Copies,
	}
}

// PrintJobModelFromDomain creates a PrintJobModel from domain PrintJob
func PrintJobModelFromDomain(j *printing.PrintJob) *PrintJobModel {
	return &PrintJobModel{
		ID:           j.ID,
		ProviderID:   j.ProviderID,
		PrinterID:    j.PrinterID,
		TableID:      j.TableID,
		RecordID:     j.RecordID,
		ExternalRef:  j.ExternalRef,
		Status:       string(j.Status),
		ErrorMessage: j.ErrorMessage,
		Copies:       j.Copies,
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
	}
}
