package printing

// RemotePrinter is one entry of a provider's remote printer catalog, as
// reported by the backend. ID is the remote service's identifier, never a
// local row key.
type RemotePrinter struct {
	ID        string
	Name      string
	IsDefault bool
}

// BarcodeLabel carries the rendered artifact of one record: the file
// content plus the metadata the backend needs to submit it.
type BarcodeLabel struct {
	FileName    string
	ContentType string
	Data        []byte
}
