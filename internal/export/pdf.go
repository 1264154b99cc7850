package export

import (
	"bytes"
	_ "embed"

	"github.com/go-pdf/fpdf"

	"github.com/angelmondragon/packfinderz-admin/internal/format"
	pkgerrors "github.com/angelmondragon/packfinderz-admin/pkg/errors"
)

const (
	pdfFont       = "DejaVu"
	pdfMargin     = 10.0
	pdfRowHeight  = 6.0
	pdfTitleSize  = 14.0
	pdfHeaderSize = 8.0
	pdfBodySize   = 7.0
)

// DejaVu covers the currency symbols and accented names the formatter emits.
var (
	//go:embed fonts/DejaVuSansCondensed.ttf
	dejaVuRegular []byte
	//go:embed fonts/DejaVuSansCondensed-Bold.ttf
	dejaVuBold []byte
)

// PDF renders a landscape A4 table. The header row is repeated on every page and
// cells are cut to each column's MaxChars.
func PDF[T any](records []T, columns []Column[T], f format.Formatter, title string) ([]byte, error) {
	doc := fpdf.New("L", "mm", "A4", "")
	doc.SetTitle(title, true)
	doc.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	doc.SetAutoPageBreak(false, pdfMargin)
	doc.AddUTF8FontFromBytes(pdfFont, "", dejaVuRegular)
	doc.AddUTF8FontFromBytes(pdfFont, "B", dejaVuBold)
	if err := doc.Error(); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeExport, err, "load pdf font")
	}

	pageW, pageH := doc.GetPageSize()
	widths := columnWidths(columns, pageW-2*pdfMargin)

	header := func() {
		doc.SetFont(pdfFont, "B", pdfHeaderSize)
		doc.SetFillColor(230, 230, 230)
		for i, c := range columns {
			doc.CellFormat(widths[i], pdfRowHeight, c.Header, "1", 0, "L", true, 0, "")
		}
		doc.Ln(-1)
		doc.SetFont(pdfFont, "", pdfBodySize)
	}

	doc.AddPage()
	if title != "" {
		doc.SetFont(pdfFont, "B", pdfTitleSize)
		doc.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	}
	header()

	for _, row := range Rows(records, columns, f) {
		if doc.GetY()+pdfRowHeight > pageH-pdfMargin {
			doc.AddPage()
			header()
		}
		for i, c := range columns {
			text := row[i]
			if c.MaxChars > 0 {
				text = format.Truncate(text, c.MaxChars)
			}
			doc.CellFormat(widths[i], pdfRowHeight, text, "1", 0, "L", false, 0, "")
		}
		doc.Ln(-1)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeExport, err, "render pdf")
	}
	return buf.Bytes(), nil
}

func columnWidths[T any](columns []Column[T], usable float64) []float64 {
	total := 0.0
	for _, c := range columns {
		total += weight(c.Width)
	}
	out := make([]float64, len(columns))
	for i, c := range columns {
		out[i] = usable * weight(c.Width) / total
	}
	return out
}

func weight(w float64) float64 {
	if w <= 0 {
		return 1
	}
	return w
}
