// Package export renders ledger rows into the downloadable formats
// offered by the admin surface. Every format emits rows in input order
// and converts timestamps to the fixed -03:00 display offset before
// formatting, so the three outputs always agree.
package export

import (
	"errors"
	"time"

	"github.com/incubadora/ponto-api/internal/core/domain"
)

// Format identifies an export serialization.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatJSON Format = "json"
)

var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat validates a format string taken from the request path.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatXLSX, FormatJSON:
		return Format(s), nil
	}
	return "", ErrUnknownFormat
}

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatJSON:
		return "application/json"
	default:
		return "text/csv"
	}
}

// Extension returns the filename extension, without the dot.
func (f Format) Extension() string {
	return string(f)
}

// Render serializes events in the given format.
func Render(f Format, events []domain.AttendanceEvent) ([]byte, error) {
	switch f {
	case FormatCSV:
		return renderCSV(events)
	case FormatXLSX:
		return renderXLSX(events)
	case FormatJSON:
		return renderJSON(events)
	}
	return nil, ErrUnknownFormat
}

const displayTimeLayout = "02/01/2006 15:04:05"

// displayTime renders t in the fixed offset, as shown in CSV and XLSX.
func displayTime(t time.Time) string {
	return t.In(domain.BRT).Format(displayTimeLayout)
}
