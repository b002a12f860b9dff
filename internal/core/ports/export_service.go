package ports

import "context"

// ExportFile is a rendered export ready to be streamed to the client.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ExportService renders stored events for a date range into a file.
type ExportService interface {
	// Export parses start/end (YYYY-MM-DD, inclusive), queries the
	// ledger and renders the rows in the requested format ("csv",
	// "xlsx" or "json").
	Export(ctx context.Context, start, end, format string) (*ExportFile, error)
}
