package engine

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/packfinderz-admin/pkg/enums"
)

type usage struct {
	ID      string
	At      string
	Service string
	Status  string
	User    string
	Note    *string
	Cost    decimal.NullDecimal
	Details map[string]any
}

func strPtr(s string) *string { return &s }

func cost(v string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(v))
}

var testServices = []string{"OpenAI", "Twilio", "Stripe"}

func usageSchema() Schema[usage] {
	return Schema[usage]{
		Name: "usage",
		ID:   func(u usage) string { return u.ID },
		Fields: map[string]Field[usage]{
			"id":      StringField(func(u usage) string { return u.ID }),
			"at":      TimeField(func(u usage) string { return u.At }),
			"service": EnumField(func(u usage) string { return u.Service }, testServices),
			"status":  EnumField(func(u usage) string { return u.Status }, []string{"Success", "Failed"}),
			"user":    StringField(func(u usage) string { return u.User }),
			"note":    OptionalStringField(func(u usage) *string { return u.Note }),
			"cost":    DecimalField(func(u usage) decimal.NullDecimal { return u.Cost }),
			"details": JSONField(func(u usage) any {
				if u.Details == nil {
					return nil
				}
				return u.Details
			}),
		},
		Searchable: []string{"id", "user", "note", "details"},
		DateField:  "at",
		GroupBy:    "service",
		Outcome: func(u usage) Outcome {
			switch u.Status {
			case "Success":
				return OutcomeSuccess
			case "Failed":
				return OutcomeFailure
			}
			return OutcomeNone
		},
		Amount:      func(u usage) decimal.NullDecimal { return u.Cost },
		Actor:       func(u usage) string { return u.User },
		DefaultSort: SortSpec{Key: "at", Direction: enums.SortDescending},
	}
}

func fixtures() []usage {
	return []usage{
		{ID: "u1", At: "2026-01-10T09:00:00Z", Service: "OpenAI", Status: "Success", User: "alice@example.com", Cost: cost("0.0200"), Details: map[string]any{"model": "gpt-4o"}},
		{ID: "u2", At: "2026-01-11T23:59:30Z", Service: "Twilio", Status: "Failed", User: "bob@example.com", Note: strPtr("Carrier rejected, retry later"), Cost: cost("0.0075")},
		{ID: "u3", At: "not-a-date", Service: "Stripe", Status: "Success", User: "carol@example.com", Cost: cost("1.50")},
		{ID: "u4", At: "2026-01-12T08:15:00Z", Service: "OpenAI", Status: "Failed", User: "Alice@Example.com"},
		{ID: "u5", At: "2026-01-09T12:00:00Z", Service: "Mailgun", Status: "Success", User: "dave@example.com", Cost: cost("0.10")},
		{ID: "u6", At: "2026-01-12T08:15:00Z", Service: "Twilio", Status: "Success", User: "erin@example.com", Cost: cost("0.0075"), Details: map[string]any{"to": "+15550100"}},
	}
}

func ids(records []usage) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}
