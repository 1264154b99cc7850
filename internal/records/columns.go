package records

import (
	"github.com/angelmondragon/packfinderz-admin/internal/export"
	"github.com/angelmondragon/packfinderz-admin/internal/format"
)

const detailsSnippet = 120

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// LogColumns is the export layout of the API usage screen.
func LogColumns() []export.Column[LogEntry] {
	return []export.Column[LogEntry]{
		{Header: "ID", Value: func(l LogEntry, _ format.Formatter) string { return l.ID }, Width: 0.7},
		{Header: "Timestamp", Value: func(l LogEntry, f format.Formatter) string { return f.DateExport(l.Timestamp) }, Width: 1.3},
		{Header: "Service", Value: func(l LogEntry, _ format.Formatter) string { return string(l.Service) }},
		{Header: "Endpoint", Value: func(l LogEntry, _ format.Formatter) string { return l.Endpoint }, Width: 1.8, MaxChars: 40},
		{Header: "User", Value: func(l LogEntry, _ format.Formatter) string { return l.UserEmail }, Width: 1.6, MaxChars: 32},
		{Header: "Status", Value: func(l LogEntry, _ format.Formatter) string { return string(l.Status) }, Width: 0.7},
		{Header: "Duration", Value: func(l LogEntry, _ format.Formatter) string { return format.Duration(l.DurationMS) }, Width: 0.7},
		{Header: "Cost", Value: func(l LogEntry, f format.Formatter) string { return f.CurrencyPrecise(l.Cost) }, Width: 0.8},
		{Header: "Error", Value: func(l LogEntry, _ format.Formatter) string { return optional(l.ErrorMessage) }, Width: 1.5, MaxChars: 36},
		{Header: "Details", Value: func(l LogEntry, _ format.Formatter) string { return format.JSONSnippet(l.Details, detailsSnippet) }, Width: 2, MaxChars: 48},
	}
}

// SubscriptionColumns is the export layout of the revenue screen.
func SubscriptionColumns() []export.Column[Subscription] {
	return []export.Column[Subscription]{
		{Header: "ID", Value: func(s Subscription, _ format.Formatter) string { return s.ID }, Width: 0.7},
		{Header: "Purchased At", Value: func(s Subscription, f format.Formatter) string { return f.DateExport(s.PurchasedAt) }, Width: 1.3},
		{Header: "User", Value: func(s Subscription, _ format.Formatter) string { return s.UserName }, MaxChars: 28},
		{Header: "Email", Value: func(s Subscription, _ format.Formatter) string { return s.UserEmail }, Width: 1.6, MaxChars: 36},
		{Header: "Plan", Value: func(s Subscription, _ format.Formatter) string { return string(s.Plan) }, Width: 0.8},
		{Header: "Status", Value: func(s Subscription, _ format.Formatter) string { return string(s.Status) }, Width: 0.8},
		{Header: "Amount", Value: func(s Subscription, f format.Formatter) string { return f.Currency(s.Amount) }, Width: 0.9},
		{Header: "Transaction", Value: func(s Subscription, _ format.Formatter) string { return s.TransactionID }, Width: 1.4, MaxChars: 30},
	}
}

// ReferralColumns is the export layout of the referrals screen.
func ReferralColumns() []export.Column[Referral] {
	return []export.Column[Referral]{
		{Header: "ID", Value: func(r Referral, _ format.Formatter) string { return r.ID }, Width: 0.7},
		{Header: "Date", Value: func(r Referral, f format.Formatter) string { return f.DateExport(r.Date) }, Width: 1.3},
		{Header: "Referrer", Value: func(r Referral, _ format.Formatter) string { return r.ReferrerName }, MaxChars: 28},
		{Header: "Referrer Email", Value: func(r Referral, _ format.Formatter) string { return r.ReferrerEmail }, Width: 1.6, MaxChars: 36},
		{Header: "Referee", Value: func(r Referral, _ format.Formatter) string { return r.RefereeName }, MaxChars: 28},
		{Header: "Referee Email", Value: func(r Referral, _ format.Formatter) string { return r.RefereeEmail }, Width: 1.6, MaxChars: 36},
		{Header: "Code", Value: func(r Referral, _ format.Formatter) string { return r.Code }, Width: 0.9},
		{Header: "Status", Value: func(r Referral, _ format.Formatter) string { return string(r.Status) }, Width: 0.8},
		{Header: "Reward", Value: func(r Referral, f format.Formatter) string { return f.Currency(r.Reward) }, Width: 0.8},
	}
}

// OrderColumns is the export layout of the logistics screen.
func OrderColumns() []export.Column[Order] {
	return []export.Column[Order]{
		{Header: "Order", Value: func(o Order, _ format.Formatter) string { return o.ID }, Width: 0.8},
		{Header: "Date", Value: func(o Order, f format.Formatter) string { return f.DateExport(o.Date) }, Width: 1.3},
		{Header: "Customer", Value: func(o Order, _ format.Formatter) string { return o.Customer }, Width: 1.2, MaxChars: 28},
		{Header: "Seller", Value: func(o Order, _ format.Formatter) string { return o.Seller }, Width: 1.2, MaxChars: 28},
		{Header: "Destination", Value: func(o Order, _ format.Formatter) string { return o.Destination }, Width: 1.4, MaxChars: 32},
		{Header: "Tracking", Value: func(o Order, _ format.Formatter) string { return optional(o.TrackingNumber) }, Width: 1.2},
		{Header: "Status", Value: func(o Order, _ format.Formatter) string { return string(o.Status) }, Width: 0.8},
		{Header: "Total", Value: func(o Order, f format.Formatter) string { return f.Currency(o.Total) }, Width: 0.9},
	}
}
