// Package hooks runs the label generation hook pipeline. Hooks are
// registered explicitly at startup; the pipeline orders and executes the
// ones applicable to a record's table before its label is generated.
package hooks

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/printhub/backend/internal/domain/printing"
	"go.uber.org/zap"
)

// Pipeline executes GenerateLabelHooks in ascending priority order.
type Pipeline struct {
	hooks  []printing.GenerateLabelHook
	logger *zap.Logger
}

// NewPipeline creates a pipeline over the given hooks
func NewPipeline(hooks []printing.GenerateLabelHook, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{hooks: hooks, logger: logger}
}

// Run executes every hook applicable to the context's table, lowest
// priority first; ties keep registration order. A context without a table
// cannot be matched to any hook, so the run is a logged no-op. The first
// hook error aborts the run; a panic in an applicability check only
// excludes that hook.
func (p *Pipeline) Run(ctx context.Context, gctx *printing.GenerationContext) error {
	if strings.TrimSpace(gctx.TableID) == "" {
		p.logger.Warn("generation context has no table, skipping hooks",
			zap.String("record_id", gctx.RecordID))
		return nil
	}

	applicable := make([]printing.GenerateLabelHook, 0, len(p.hooks))
	for _, h := range p.hooks {
		if p.appliesTo(h, gctx.TableID) {
			applicable = append(applicable, h)
		}
	}
	sort.SliceStable(applicable, func(i, j int) bool {
		return applicable[i].Priority() < applicable[j].Priority()
	})

	for _, h := range applicable {
		if err := p.execute(ctx, h, gctx); err != nil {
			if printing.IsProviderError(err) {
				return err
			}
			return printing.WrapProviderError(fmt.Sprintf("hook %q (%T) failed", h.Name(), h), err)
		}
	}
	return nil
}

// execute shields the run from a panicking hook: the panic aborts the
// pipeline as an error instead of escaping to the dispatcher.
func (p *Pipeline) execute(ctx context.Context, h printing.GenerateLabelHook, gctx *printing.GenerationContext) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			p.logger.Error("hook panicked",
				zap.String("hook", h.Name()),
				zap.String("table_id", gctx.TableID),
				zap.Any("panic", rec))
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	return h.Execute(ctx, gctx)
}

// appliesTo guards the applicability check: a hook that panics while
// deciding is skipped and logged rather than taking the dispatch down.
func (p *Pipeline) appliesTo(h printing.GenerateLabelHook, tableID string) (applies bool) {
	defer func() {
		if rec := recover(); rec != nil {
			p.logger.Warn("hook applicability check panicked, skipping hook",
				zap.String("hook", h.Name()),
				zap.String("table_id", tableID),
				zap.Any("panic", rec))
			applies = false
		}
	}()
	return h.AppliesTo(tableID)
}
