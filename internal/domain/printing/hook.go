package printing

import "context"

// DefaultHookPriority is the priority assumed for hooks that do not care
// about ordering. Lower values run earlier.
const DefaultHookPriority = 100

// GenerateLabelHook runs before a label is generated and may contribute
// template parameters or veto the generation by returning an error.
type GenerateLabelHook interface {
	// Name identifies the hook in logs and error messages.
	Name() string

	// Priority orders hook execution ascending; ties keep registration
	// order.
	Priority() int

	// AppliesTo reports whether the hook wants to run for the table.
	AppliesTo(tableID string) bool

	// Execute mutates the generation context. A non-nil error aborts the
	// generation for this record.
	Execute(ctx context.Context, gctx *GenerationContext) error
}

// GenerationContext is the mutable state hooks share while a label for one
// record is prepared. It is used by a single goroutine; hooks must not
// retain it past Execute. The caller-supplied parameters seed the output
// parameter map and stay readable in their original form even after hooks
// overwrite the seeded values.
type GenerationContext struct {
	Provider *Provider
	Printer  *Printer
	TableID  string
	RecordID string
	Line     TemplateLine
	Copies   int

	callerParams map[string]string
	params       map[string]any
}

// NewGenerationContext creates the context for one record dispatch
func NewGenerationContext(provider *Provider, printer *Printer, tableID, recordID string, line TemplateLine, copies int, callerParams map[string]string) *GenerationContext {
	gctx := &GenerationContext{
		Provider:     provider,
		Printer:      printer,
		TableID:      tableID,
		RecordID:     recordID,
		Line:         line,
		Copies:       copies,
		callerParams: make(map[string]string, len(callerParams)),
		params:       make(map[string]any, len(callerParams)),
	}
	for k, v := range callerParams {
		gctx.callerParams[k] = v
		gctx.params[k] = v
	}
	return gctx
}

// CallerParameter returns the raw caller-supplied value for key.
func (g *GenerationContext) CallerParameter(key string) (string, bool) {
	v, ok := g.callerParams[key]
	return v, ok
}

// AddParameter stores a template parameter, overwriting any earlier value
// under the same key.
func (g *GenerationContext) AddParameter(key string, value any) {
	g.params[key] = value
}

// Parameter returns the stored value for key.
func (g *GenerationContext) Parameter(key string) (any, bool) {
	v, ok := g.params[key]
	return v, ok
}

// Parameters returns a copy of the accumulated parameters.
func (g *GenerationContext) Parameters() map[string]any {
	out := make(map[string]any, len(g.params))
	for k, v := range g.params {
		out[k] = v
	}
	return out
}
