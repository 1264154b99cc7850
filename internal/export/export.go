// Package export renders a filtered, sorted record set into downloadable payloads.
package export

import (
	"fmt"
	"time"

	"github.com/angelmondragon/packfinderz-admin/internal/format"
	"github.com/angelmondragon/packfinderz-admin/pkg/enums"
	pkgerrors "github.com/angelmondragon/packfinderz-admin/pkg/errors"
)

// Column describes one exported field. Every cell value goes through the Formatter.
type Column[T any] struct {
	Header string
	Value  func(T, format.Formatter) string
	// Width is the relative PDF column width; zero means 1.
	Width float64
	// MaxChars truncates PDF cells; zero disables truncation.
	MaxChars int
}

func (c Column[T]) cell(rec T, f format.Formatter) string {
	if c.Value == nil {
		return ""
	}
	return c.Value(rec, f)
}

// Headers returns the column headers in order.
func Headers[T any](columns []Column[T]) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.Header
	}
	return out
}

// Rows materialises every record as formatted cells.
func Rows[T any](records []T, columns []Column[T], f format.Formatter) [][]string {
	out := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, len(columns))
		for i, c := range columns {
			row[i] = c.cell(rec, f)
		}
		out = append(out, row)
	}
	return out
}

// Render dispatches to the renderer for ef. title names the PDF document and the sheet.
func Render[T any](ef enums.ExportFormat, records []T, columns []Column[T], f format.Formatter, title string) ([]byte, error) {
	switch ef {
	case enums.ExportFormatCSV:
		return CSV(records, columns, f), nil
	case enums.ExportFormatXLSX:
		return Spreadsheet(records, columns, f, title)
	case enums.ExportFormatPDF:
		return PDF(records, columns, f, title)
	default:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unsupported export format %q", ef))
	}
}

// ContentType returns the MIME type served with a payload of the given format.
func ContentType(ef enums.ExportFormat) string {
	switch ef {
	case enums.ExportFormatCSV:
		return "text/csv; charset=utf-8"
	case enums.ExportFormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case enums.ExportFormatPDF:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// FileName builds the download name, e.g. logs-20260115-100000.csv.
func FileName(dataset enums.Dataset, ef enums.ExportFormat, now time.Time) string {
	return fmt.Sprintf("%s-%s.%s", dataset, now.UTC().Format("20060102-150405"), ef)
}
