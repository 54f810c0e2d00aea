package printing

import (
	"strings"

	"github.com/printhub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Well-known provider parameter keys. Connectors look these up on the
// Provider; parameter keys are matched case-insensitively.
const (
	ParamPrintersURL = "printersurl"
	ParamAPIKey      = "apikey"
	ParamPrintJobURL = "printjoburl"
)

// Provider is a configured print backend instance: which connector
// implementation to load plus the named parameters (endpoints, credentials)
// that connector needs. Configuration storage owns it; the printing core
// only reads it.
type Provider struct {
	shared.BaseEntity
	SearchKey      string
	Name           string
	Implementation string // descriptor naming a registered backend factory
	IsActive       bool
	Params         []ProviderParam
}

// ProviderParam is one named parameter of a provider (e.g. an API endpoint
// URL or credential).
type ProviderParam struct {
	shared.BaseEntity
	ProviderID uuid.UUID
	SearchKey  string
	Content    string
}

// NewProvider creates a new provider configuration
func NewProvider(searchKey, name, implementation string) (*Provider, error) {
	if strings.TrimSpace(searchKey) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Provider search key cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Provider name cannot be empty")
	}
	return &Provider{
		BaseEntity:     shared.NewBaseEntity(),
		SearchKey:      strings.TrimSpace(searchKey),
		Name:           strings.TrimSpace(name),
		Implementation: strings.TrimSpace(implementation),
		IsActive:       true,
	}, nil
}

// SetParam adds or replaces a named parameter. Keys are compared
// case-insensitively.
func (p *Provider) SetParam(key, content string) {
	for i := range p.Params {
		if strings.EqualFold(p.Params[i].SearchKey, key) {
			p.Params[i].Content = content
			p.Params[i].Touch()
			return
		}
	}
	p.Params = append(p.Params, ProviderParam{
		BaseEntity: shared.NewBaseEntity(),
		ProviderID: p.ID,
		SearchKey:  key,
		Content:    content,
	})
}

// Param returns the content of the named parameter, looked up
// case-insensitively.
func (p *Provider) Param(key string) (string, bool) {
	for i := range p.Params {
		if strings.EqualFold(p.Params[i].SearchKey, key) {
			return p.Params[i].Content, true
		}
	}
	return "", false
}

// RequireParam returns the content of the named parameter or a ProviderError
// when the parameter is missing or its content is blank.
func (p *Provider) RequireParam(key string) (string, error) {
	content, ok := p.Param(key)
	if !ok {
		return "", NewProviderErrorf("provider %q has no parameter %q", p.SearchKey, key)
	}
	if strings.TrimSpace(content) == "" {
		return "", NewProviderErrorf("provider %q parameter %q has no content", p.SearchKey, key)
	}
	return content, nil
}
