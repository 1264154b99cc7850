package export

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/angelmondragon/packfinderz-admin/internal/format"
	pkgerrors "github.com/angelmondragon/packfinderz-admin/pkg/errors"
)

const (
	defaultSheet  = "Sheet1"
	maxSheetRunes = 31
)

// SheetName makes title safe for use as a worksheet name.
func SheetName(title string) string {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return ' '
		}
		return r
	}, title)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return defaultSheet
	}
	runes := []rune(cleaned)
	if len(runes) > maxSheetRunes {
		cleaned = strings.TrimSpace(string(runes[:maxSheetRunes]))
	}
	return cleaned
}

// Spreadsheet renders an xlsx workbook with a bold header row and one row per record.
func Spreadsheet[T any](records []T, columns []Column[T], f format.Formatter, sheet string) ([]byte, error) {
	book := excelize.NewFile()
	defer book.Close()

	name := SheetName(sheet)
	if name != defaultSheet {
		if err := book.SetSheetName(defaultSheet, name); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeExport, err, "rename sheet")
		}
	}

	if err := book.SetSheetRow(name, "A1", toCells(Headers(columns))); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeExport, err, "write header row")
	}
	if len(columns) > 0 {
		bold, err := book.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeExport, err, "create header style")
		}
		last, err := excelize.CoordinatesToCellName(len(columns), 1)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeExport, err, "resolve header range")
		}
		if err := book.SetCellStyle(name, "A1", last, bold); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeExport, err, "style header row")
		}
	}

	for i, row := range Rows(records, columns, f) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeExport, err, "resolve row cell")
		}
		if err := book.SetSheetRow(name, cell, toCells(row)); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeExport, err, "write row")
		}
	}

	for i, c := range columns {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeExport, err, "resolve column")
		}
		if err := book.SetColWidth(name, col, col, sheetWidth(c.Width)); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeExport, err, "set column width")
		}
	}

	buf, err := book.WriteToBuffer()
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeExport, err, "write workbook")
	}
	return buf.Bytes(), nil
}

func toCells(values []string) *[]any {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return &cells
}

func sheetWidth(weight float64) float64 {
	if weight <= 0 {
		weight = 1
	}
	return 12 * weight
}
