package hooks

import (
	"context"
	"errors"
	"testing"

	"github.com/printhub/backend/internal/domain/printing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHook struct {
	name     string
	priority int
	tables   []string
	order    *[]string
	err      error
	panicsOn bool
	panicsIn bool
}

func (h *recordingHook) Name() string  { return h.name }
func (h *recordingHook) Priority() int { return h.priority }

func (h *recordingHook) AppliesTo(tableID string) bool {
	if h.panicsOn {
		panic("applicability blew up")
	}
	if len(h.tables) == 0 {
		return true
	}
	for _, t := range h.tables {
		if t == tableID {
			return true
		}
	}
	return false
}

func (h *recordingHook) Execute(ctx context.Context, gctx *printing.GenerationContext) error {
	if h.order != nil {
		*h.order = append(*h.order, h.name)
	}
	if h.panicsIn {
		panic("execute blew up")
	}
	return h.err
}

func newContext(t *testing.T, tableID string) *printing.GenerationContext {
	t.Helper()
	provider, err := printing.NewProvider("test", "Test", "test")
	require.NoError(t, err)
	return printing.NewGenerationContext(provider, nil, tableID, "rec-1", printing.TemplateLine{}, 1, nil)
}

func TestPipelineRun(t *testing.T) {
	t.Run("hooks run in ascending priority order", func(t *testing.T) {
		var order []string
		pipeline := NewPipeline([]printing.GenerateLabelHook{
			&recordingHook{name: "late", priority: 150, order: &order},
			&recordingHook{name: "early", priority: 50, order: &order},
			&recordingHook{name: "middle", priority: 100, order: &order},
		}, nil)

		require.NoError(t, pipeline.Run(context.Background(), newContext(t, "M_Product")))
		assert.Equal(t, []string{"early", "middle", "late"}, order)
	})

	t.Run("equal priorities keep registration order", func(t *testing.T) {
		var order []string
		pipeline := NewPipeline([]printing.GenerateLabelHook{
			&recordingHook{name: "first", priority: 100, order: &order},
			&recordingHook{name: "second", priority: 100, order: &order},
		}, nil)

		require.NoError(t, pipeline.Run(context.Background(), newContext(t, "M_Product")))
		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("filters hooks by table", func(t *testing.T) {
		var order []string
		pipeline := NewPipeline([]printing.GenerateLabelHook{
			&recordingHook{name: "product", tables: []string{"M_Product"}, order: &order},
			&recordingHook{name: "order", tables: []string{"C_Order"}, order: &order},
		}, nil)

		require.NoError(t, pipeline.Run(context.Background(), newContext(t, "M_Product")))
		assert.Equal(t, []string{"product"}, order)
	})

	t.Run("first failing hook aborts the run", func(t *testing.T) {
		var order []string
		pipeline := NewPipeline([]printing.GenerateLabelHook{
			&recordingHook{name: "ok", priority: 50, order: &order},
			&recordingHook{name: "bad", priority: 100, order: &order, err: errors.New("nope")},
			&recordingHook{name: "never", priority: 150, order: &order},
		}, nil)

		err := pipeline.Run(context.Background(), newContext(t, "M_Product"))
		require.Error(t, err)
		assert.Equal(t, []string{"ok", "bad"}, order)
	})

	t.Run("plain hook errors are wrapped with the hook name", func(t *testing.T) {
		cause := errors.New("record missing attribute")
		pipeline := NewPipeline([]printing.GenerateLabelHook{
			&recordingHook{name: "validator", err: cause},
		}, nil)

		err := pipeline.Run(context.Background(), newContext(t, "M_Product"))
		require.Error(t, err)
		assert.True(t, printing.IsProviderError(err))
		assert.Contains(t, err.Error(), "validator")
		assert.ErrorIs(t, err, cause)
	})

	t.Run("provider errors pass through unwrapped", func(t *testing.T) {
		cause := printing.NewProviderError("already descriptive")
		pipeline := NewPipeline([]printing.GenerateLabelHook{
			&recordingHook{name: "validator", err: cause},
		}, nil)

		err := pipeline.Run(context.Background(), newContext(t, "M_Product"))
		assert.Equal(t, cause, err)
	})

	t.Run("panicking applicability check skips only that hook", func(t *testing.T) {
		var order []string
		pipeline := NewPipeline([]printing.GenerateLabelHook{
			&recordingHook{name: "broken", panicsOn: true, order: &order},
			&recordingHook{name: "healthy", order: &order},
		}, nil)

		require.NoError(t, pipeline.Run(context.Background(), newContext(t, "M_Product")))
		assert.Equal(t, []string{"healthy"}, order)
	})

	t.Run("panicking hook aborts the run as a provider error", func(t *testing.T) {
		var order []string
		pipeline := NewPipeline([]printing.GenerateLabelHook{
			&recordingHook{name: "explosive", priority: 50, order: &order, panicsIn: true},
			&recordingHook{name: "never", priority: 100, order: &order},
		}, nil)

		err := pipeline.Run(context.Background(), newContext(t, "M_Product"))
		require.Error(t, err)
		assert.True(t, printing.IsProviderError(err))
		assert.Contains(t, err.Error(), "explosive")
		assert.Contains(t, err.Error(), "recordingHook")
		assert.Equal(t, []string{"explosive"}, order)
	})

	t.Run("context without a table runs no hooks", func(t *testing.T) {
		var order []string
		pipeline := NewPipeline([]printing.GenerateLabelHook{
			&recordingHook{name: "any", order: &order},
		}, nil)

		require.NoError(t, pipeline.Run(context.Background(), newContext(t, "  ")))
		assert.Empty(t, order)
	})

	t.Run("empty pipeline is a no-op", func(t *testing.T) {
		pipeline := NewPipeline(nil, nil)
		assert.NoError(t, pipeline.Run(context.Background(), newContext(t, "M_Product")))
	})
}

func TestBarcodeHook(t *testing.T) {
	t.Run("contributes both barcode forms", func(t *testing.T) {
		hook := NewBarcodeHook(func(ctx context.Context, tableID, recordID string) (string, error) {
			return "123456789012", nil
		})
		gctx := newContext(t, "M_InOut")

		require.NoError(t, hook.Execute(context.Background(), gctx))
		value, ok := gctx.Parameter(BarcodeParameter)
		require.True(t, ok)
		assert.Equal(t, "123456789012", value)
		separated, ok := gctx.Parameter(BarcodeWithSeparatorParameter)
		require.True(t, ok)
		assert.Equal(t, "1234-5678-9012", separated)
	})

	t.Run("short barcodes are not separated", func(t *testing.T) {
		hook := NewBarcodeHook(func(ctx context.Context, tableID, recordID string) (string, error) {
			return "4711", nil
		})
		gctx := newContext(t, "M_InOut")

		require.NoError(t, hook.Execute(context.Background(), gctx))
		separated, _ := gctx.Parameter(BarcodeWithSeparatorParameter)
		assert.Equal(t, "4711", separated)
	})

	t.Run("falls back to record ID without a lookup", func(t *testing.T) {
		hook := NewBarcodeHook(nil)
		gctx := newContext(t, "M_Product")

		require.NoError(t, hook.Execute(context.Background(), gctx))
		value, _ := gctx.Parameter(BarcodeParameter)
		assert.Equal(t, "rec-1", value)
	})

	t.Run("lookup errors abort", func(t *testing.T) {
		hook := NewBarcodeHook(func(ctx context.Context, tableID, recordID string) (string, error) {
			return "", errors.New("db down")
		})
		assert.Error(t, hook.Execute(context.Background(), newContext(t, "M_Product")))
	})

	t.Run("table list restricts applicability", func(t *testing.T) {
		hook := NewBarcodeHook(nil, "M_Product")
		assert.True(t, hook.AppliesTo("m_product"))
		assert.False(t, hook.AppliesTo("C_Order"))
	})
}
