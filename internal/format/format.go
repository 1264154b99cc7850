// Package format renders currency, timestamps and derived display strings the same
// way for the admin screens and every export format. All functions are total.
package format

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/angelmondragon/packfinderz-admin/pkg/enums"
)

const (
	NotAvailable = "N/A"
	InvalidDate  = "Invalid Date"
	FormatError  = "Format Error"

	DisplayLayout = "Jan 2, 2006, 3:04:05 PM"
	ExportLayout  = "2006-01-02 15:04:05"

	preciseDigits = 4
	ellipsis      = "..."
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses the ISO-8601 shapes found in record data.
// Values without a zone are read as UTC.
func ParseTimestamp(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Formatter carries the currency/locale context supplied by the caller.
type Formatter struct {
	Code     enums.Currency
	Location *time.Location
	Language language.Tag
}

// New builds a Formatter; an invalid currency falls back to USD and a nil location to UTC.
func New(cur enums.Currency, loc *time.Location) Formatter {
	if !cur.IsValid() {
		cur = enums.CurrencyUSD
	}
	if loc == nil {
		loc = time.UTC
	}
	return Formatter{Code: cur, Location: loc, Language: language.English}
}

func (f Formatter) location() *time.Location {
	if f.Location == nil {
		return time.UTC
	}
	return f.Location
}

func (f Formatter) printer() *message.Printer {
	tag := f.Language
	if tag == language.Und {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

// Scale is the number of fraction digits the currency is normally displayed with.
func (f Formatter) Scale() int {
	unit, err := currency.ParseISO(string(f.Code))
	if err != nil {
		return 2
	}
	scale, _ := currency.Standard.Rounding(unit)
	return scale
}

// Currency renders an amount at the currency's standard precision, "N/A" when absent.
func (f Formatter) Currency(amount decimal.NullDecimal) string {
	if !amount.Valid {
		return NotAvailable
	}
	scale := f.Scale()
	return f.money(amount.Decimal, scale, scale)
}

// CurrencyPrecise keeps up to four fraction digits so sub-unit API costs stay visible.
func (f Formatter) CurrencyPrecise(amount decimal.NullDecimal) string {
	if !amount.Valid {
		return NotAvailable
	}
	scale := f.Scale()
	maxDigits := preciseDigits
	if scale > maxDigits {
		maxDigits = scale
	}
	return f.money(amount.Decimal, scale, maxDigits)
}

func (f Formatter) money(amount decimal.Decimal, minDigits, maxDigits int) string {
	sign := ""
	rounded := amount.Round(int32(maxDigits))
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	intPart, frac, _ := strings.Cut(rounded.StringFixed(int32(maxDigits)), ".")
	for len(frac) > minDigits && strings.HasSuffix(frac, "0") {
		frac = frac[:len(frac)-1]
	}

	grouped := intPart
	if n, err := strconv.ParseInt(intPart, 10, 64); err == nil {
		grouped = f.printer().Sprintf("%d", n)
	}

	out := sign + f.Code.Symbol() + grouped
	if frac != "" {
		out += "." + frac
	}
	return out
}

// Amount renders a plain fixed-point number for spreadsheet cells; empty when absent.
func (f Formatter) Amount(amount decimal.NullDecimal) string {
	if !amount.Valid {
		return ""
	}
	return amount.Decimal.StringFixed(int32(preciseDigits))
}

// DateDisplay renders a timestamp in the long human format.
func (f Formatter) DateDisplay(iso string) string {
	t, ok := ParseTimestamp(iso)
	if !ok {
		return InvalidDate
	}
	return t.In(f.location()).Format(DisplayLayout)
}

// DateExport renders a timestamp in the machine-sortable export format.
func (f Formatter) DateExport(iso string) string {
	t, ok := ParseTimestamp(iso)
	if !ok {
		return InvalidDate
	}
	return t.In(f.location()).Format(ExportLayout)
}

// Duration renders a latency in milliseconds as 850ms, 1.25s or 2m 5s.
func Duration(ms *int64) string {
	if ms == nil {
		return NotAvailable
	}
	v := *ms
	switch {
	case v < 0:
		return FormatError
	case v < 1000:
		return fmt.Sprintf("%dms", v)
	case v < 60_000:
		secs := strconv.FormatFloat(float64(v)/1000, 'f', 2, 64)
		secs = strings.TrimRight(strings.TrimRight(secs, "0"), ".")
		return secs + "s"
	default:
		return fmt.Sprintf("%dm %ds", v/60_000, (v%60_000)/1000)
	}
}

// Truncate shortens s to at most limit runes, marking the cut with an ellipsis.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= len(ellipsis) {
		return string(runes[:limit])
	}
	return string(runes[:limit-len(ellipsis)]) + ellipsis
}

// JSONSnippet renders an arbitrary detail payload as compact JSON, truncated to limit runes.
func JSONSnippet(v any, limit int) string {
	if v == nil {
		return ""
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return FormatError
	}
	if limit <= 0 {
		return string(raw)
	}
	return Truncate(string(raw), limit)
}
