package enums

import (
	"fmt"
	"strings"
)

// ExportFormat is the interchange format an export is rendered to.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
	ExportFormatPDF  ExportFormat = "pdf"
)

var validExportFormats = []ExportFormat{
	ExportFormatCSV,
	ExportFormatXLSX,
	ExportFormatPDF,
}

// String implements fmt.Stringer.
func (f ExportFormat) String() string {
	return string(f)
}

// IsValid reports whether the format is recognized.
func (f ExportFormat) IsValid() bool {
	for _, candidate := range validExportFormats {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseExportFormat converts raw input into an ExportFormat.
func ParseExportFormat(value string) (ExportFormat, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range validExportFormats {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid export format %q", value)
}
