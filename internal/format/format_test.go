package format

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/packfinderz-admin/pkg/enums"
)

func amount(v string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(v))
}

func TestCurrencyStandardPrecision(t *testing.T) {
	usd := New(enums.CurrencyUSD, nil)
	cases := map[string]string{
		"0":       "$0.00",
		"1.5":     "$1.50",
		"1234.5":  "$1,234.50",
		"0.005":   "$0.01",
		"-12.345": "-$12.35",
	}
	for in, want := range cases {
		if got := usd.Currency(amount(in)); got != want {
			t.Fatalf("Currency(%s) = %q, want %q", in, got, want)
		}
	}

	jpy := New(enums.CurrencyJPY, nil)
	if got := jpy.Currency(amount("1500.4")); got != "¥1,500" {
		t.Fatalf("JPY should have no fraction digits, got %q", got)
	}
}

func TestCurrencyNullIsNotAvailable(t *testing.T) {
	f := New(enums.CurrencyEUR, nil)
	if got := f.Currency(decimal.NullDecimal{}); got != NotAvailable {
		t.Fatalf("expected N/A, got %q", got)
	}
	if got := f.CurrencyPrecise(decimal.NullDecimal{}); got != NotAvailable {
		t.Fatalf("expected N/A, got %q", got)
	}
}

func TestCurrencyPreciseKeepsSubUnitCosts(t *testing.T) {
	f := New(enums.CurrencyUSD, nil)
	cases := map[string]string{
		"0.0012":   "$0.0012",
		"0.00125":  "$0.0013",
		"1.5":      "$1.50",
		"2.123":    "$2.123",
		"12000.25": "$12,000.25",
	}
	for in, want := range cases {
		if got := f.CurrencyPrecise(amount(in)); got != want {
			t.Fatalf("CurrencyPrecise(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestNewFallsBackToUSD(t *testing.T) {
	f := New(enums.Currency("XXX"), nil)
	if f.Code != enums.CurrencyUSD {
		t.Fatalf("expected USD fallback, got %s", f.Code)
	}
	if f.Scale() != 2 {
		t.Fatalf("expected scale 2, got %d", f.Scale())
	}
}

func TestDateFormatting(t *testing.T) {
	f := New(enums.CurrencyUSD, time.UTC)
	iso := "2026-01-15T10:05:09Z"
	if got := f.DateExport(iso); got != "2026-01-15 10:05:09" {
		t.Fatalf("unexpected export date %q", got)
	}
	if got := f.DateDisplay(iso); got != "Jan 15, 2026, 10:05:09 AM" {
		t.Fatalf("unexpected display date %q", got)
	}
	if got := f.DateExport("2026-01-15"); got != "2026-01-15 00:00:00" {
		t.Fatalf("unexpected date-only export %q", got)
	}
}

func TestDateFormattingUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	f := New(enums.CurrencyUSD, loc)
	if got := f.DateExport("2026-01-15T23:30:00Z"); got != "2026-01-16 01:30:00" {
		t.Fatalf("unexpected shifted date %q", got)
	}
}

func TestDateFormattingDegradesGracefully(t *testing.T) {
	f := Formatter{}
	for _, in := range []string{"", "not-a-date", "2026-13-45T99:00:00Z"} {
		if got := f.DateDisplay(in); got != InvalidDate {
			t.Fatalf("DateDisplay(%q) = %q", in, got)
		}
		if got := f.DateExport(in); got != InvalidDate {
			t.Fatalf("DateExport(%q) = %q", in, got)
		}
	}
}

func TestDuration(t *testing.T) {
	ptr := func(v int64) *int64 { return &v }
	cases := []struct {
		in   *int64
		want string
	}{
		{nil, NotAvailable},
		{ptr(-1), FormatError},
		{ptr(0), "0ms"},
		{ptr(850), "850ms"},
		{ptr(1250), "1.25s"},
		{ptr(2000), "2s"},
		{ptr(125_000), "2m 5s"},
	}
	for _, tc := range cases {
		if got := Duration(tc.in); got != tc.want {
			t.Fatalf("Duration = %q, want %q", got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Fatalf("short strings are untouched, got %q", got)
	}
	if got := Truncate("hello world", 8); got != "hello..." {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := Truncate("héllo wörld", 6); got != "hél..." {
		t.Fatalf("truncation must be rune safe, got %q", got)
	}
	if got := Truncate("abcdef", 2); got != "ab" {
		t.Fatalf("tiny limits skip the ellipsis, got %q", got)
	}
	if got := Truncate("abc", 0); got != "" {
		t.Fatalf("zero limit yields empty, got %q", got)
	}
}

func TestJSONSnippet(t *testing.T) {
	details := map[string]any{"model": "gpt-4", "tokens": 120}
	if got := JSONSnippet(details, 0); got != `{"model":"gpt-4","tokens":120}` {
		t.Fatalf("unexpected snippet %q", got)
	}
	if got := JSONSnippet(details, 10); got != `{"model...` {
		t.Fatalf("unexpected truncated snippet %q", got)
	}
	if got := JSONSnippet(math.NaN(), 0); got != FormatError {
		t.Fatalf("unserialisable values render as format error, got %q", got)
	}
	if got := JSONSnippet(nil, 5); got != "" {
		t.Fatalf("nil details render empty, got %q", got)
	}
}

func TestParseTimestamp(t *testing.T) {
	valid := []string{"2026-01-15T10:00:00Z", "2026-01-15T10:00:00.123+02:00", "2026-01-15T10:00:00", "2026-01-15 10:00:00", "2026-01-15"}
	for _, v := range valid {
		if _, ok := ParseTimestamp(v); !ok {
			t.Fatalf("expected %q to parse", v)
		}
	}
	if _, ok := ParseTimestamp("15/01/2026"); ok {
		t.Fatalf("unexpected parse of non-ISO value")
	}
}
