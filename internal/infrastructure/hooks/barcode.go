package hooks

import (
	"context"
	"strings"

	"github.com/printhub/backend/internal/domain/printing"
)

// Template parameters the barcode hook fills.
const (
	BarcodeParameter              = "BARCODE"
	BarcodeWithSeparatorParameter = "BARCODE_WITH_SEPARATOR"
)

// barcodeGroupSize is the digit group length used for the human-readable
// separator form.
const barcodeGroupSize = 4

// BarcodeLookup resolves the barcode value for a record, or "" when the
// record has none.
type BarcodeLookup func(ctx context.Context, tableID, recordID string) (string, error)

// BarcodeHook contributes the record's barcode to the template parameters,
// both raw and in a hyphen-separated display form. When the lookup yields
// nothing, the record ID itself is used so labels always carry a scannable
// value.
type BarcodeHook struct {
	lookup BarcodeLookup
	tables map[string]struct{}
}

// NewBarcodeHook creates a barcode hook. With no tables given the hook
// applies to every table.
func NewBarcodeHook(lookup BarcodeLookup, tables ...string) *BarcodeHook {
	h := &BarcodeHook{lookup: lookup}
	if len(tables) > 0 {
		h.tables = make(map[string]struct{}, len(tables))
		for _, t := range tables {
			h.tables[strings.ToLower(t)] = struct{}{}
		}
	}
	return h
}

func (h *BarcodeHook) Name() string { return "barcode" }

func (h *BarcodeHook) Priority() int { return printing.DefaultHookPriority }

func (h *BarcodeHook) AppliesTo(tableID string) bool {
	if h.tables == nil {
		return true
	}
	_, ok := h.tables[strings.ToLower(tableID)]
	return ok
}

func (h *BarcodeHook) Execute(ctx context.Context, gctx *printing.GenerationContext) error {
	barcode := ""
	if h.lookup != nil {
		value, err := h.lookup(ctx, gctx.TableID, gctx.RecordID)
		if err != nil {
			return err
		}
		barcode = strings.TrimSpace(value)
	}
	if barcode == "" {
		barcode = gctx.RecordID
	}
	gctx.AddParameter(BarcodeParameter, barcode)
	gctx.AddParameter(BarcodeWithSeparatorParameter, withSeparator(barcode))
	return nil
}

// withSeparator groups the barcode into hyphen-separated blocks, e.g.
// "123456789012" becomes "1234-5678-9012".
func withSeparator(barcode string) string {
	runes := []rune(barcode)
	if len(runes) <= barcodeGroupSize {
		return barcode
	}
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && i%barcodeGroupSize == 0 {
			b.WriteRune('-')
		}
		b.WriteRune(r)
	}
	return b.String()
}
