package printing

import "context"

// Backend is the contract every print connector implements. A backend is
// constructed by a zero-argument factory and receives all request-scoped
// state (provider config, labels) through the operation arguments.
//
// Implementations that do not support an operation return a ProviderError
// wrapping ErrUnsupportedOperation rather than panicking.
type Backend interface {
	// FetchPrinters queries the remote service for its printer catalog.
	FetchPrinters(ctx context.Context, provider *Provider) ([]RemotePrinter, error)

	// GenerateLabel renders the label artifact for one record using the
	// resolved template.
	GenerateLabel(ctx context.Context, provider *Provider, req GenerateLabelRequest) (*BarcodeLabel, error)

	// SendToPrinter submits a generated label to the given printer and
	// returns the remote job reference.
	SendToPrinter(ctx context.Context, provider *Provider, printer *Printer, label *BarcodeLabel, copies int) (string, error)
}

// GenerateLabelRequest identifies the record to render and the template
// line resolved for it. Parameters carries hook-contributed values into
// the template.
type GenerateLabelRequest struct {
	TableID    string
	RecordID   string
	Line       TemplateLine
	Parameters map[string]any
}

// BaseBackend is an inert Backend for embedding, so connectors only
// override what they implement. FetchPrinters reports an empty catalog
// rather than failing: a refresh against a partial connector is a safe
// no-op. The generate and send operations report themselves unsupported.
type BaseBackend struct{}

func (BaseBackend) FetchPrinters(ctx context.Context, provider *Provider) ([]RemotePrinter, error) {
	return []RemotePrinter{}, nil
}

func (BaseBackend) GenerateLabel(ctx context.Context, provider *Provider, req GenerateLabelRequest) (*BarcodeLabel, error) {
	return nil, WrapProviderError("generate label", ErrUnsupportedOperation)
}

func (BaseBackend) SendToPrinter(ctx context.Context, provider *Provider, printer *Printer, label *BarcodeLabel, copies int) (string, error) {
	return "", WrapProviderError("send to printer", ErrUnsupportedOperation)
}
