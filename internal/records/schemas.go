package records

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/packfinderz-admin/internal/engine"
	"github.com/angelmondragon/packfinderz-admin/pkg/enums"
)

// LogSchema describes LogEntry to the engine. Groups are per service.
func LogSchema() engine.Schema[LogEntry] {
	return engine.Schema[LogEntry]{
		Name: "logs",
		ID:   func(l LogEntry) string { return l.ID },
		Fields: map[string]engine.Field[LogEntry]{
			"id":            engine.StringField(func(l LogEntry) string { return l.ID }),
			"timestamp":     engine.TimeField(func(l LogEntry) string { return l.Timestamp }),
			"service":       engine.EnumField(func(l LogEntry) string { return string(l.Service) }, enums.APIServiceValues()),
			"status":        engine.EnumField(func(l LogEntry) string { return string(l.Status) }, enums.LogStatusValues()),
			"endpoint":      engine.StringField(func(l LogEntry) string { return l.Endpoint }),
			"user_id":       engine.StringField(func(l LogEntry) string { return l.UserID }),
			"user_email":    engine.StringField(func(l LogEntry) string { return l.UserEmail }),
			"error_message": engine.OptionalStringField(func(l LogEntry) *string { return l.ErrorMessage }),
			"cost":          engine.DecimalField(func(l LogEntry) decimal.NullDecimal { return l.Cost }),
			"duration_ms": engine.NumberField(func(l LogEntry) (float64, bool) {
				if l.DurationMS == nil {
					return 0, false
				}
				return float64(*l.DurationMS), true
			}),
			"details": engine.JSONField(func(l LogEntry) any {
				if l.Details == nil {
					return nil
				}
				return l.Details
			}),
		},
		Searchable: []string{"id", "service", "endpoint", "user_id", "user_email", "error_message", "details"},
		DateField:  "timestamp",
		GroupBy:    "service",
		Outcome: func(l LogEntry) engine.Outcome {
			switch l.Status {
			case enums.LogStatusSuccess:
				return engine.OutcomeSuccess
			case enums.LogStatusFailed:
				return engine.OutcomeFailure
			}
			return engine.OutcomeNone
		},
		Amount:      func(l LogEntry) decimal.NullDecimal { return l.Cost },
		Actor:       func(l LogEntry) string { return l.UserID },
		DefaultSort: engine.SortSpec{Key: "timestamp", Direction: enums.SortDescending},
	}
}

// SubscriptionSchema describes Subscription. Revenue is grouped per plan.
func SubscriptionSchema() engine.Schema[Subscription] {
	return engine.Schema[Subscription]{
		Name: "revenue",
		ID:   func(s Subscription) string { return s.ID },
		Fields: map[string]engine.Field[Subscription]{
			"id":             engine.StringField(func(s Subscription) string { return s.ID }),
			"purchased_at":   engine.TimeField(func(s Subscription) string { return s.PurchasedAt }),
			"user_name":      engine.StringField(func(s Subscription) string { return s.UserName }),
			"user_email":     engine.StringField(func(s Subscription) string { return s.UserEmail }),
			"plan":           engine.EnumField(func(s Subscription) string { return string(s.Plan) }, enums.SubscriptionPlanValues()),
			"status":         engine.EnumField(func(s Subscription) string { return string(s.Status) }, enums.SubscriptionStatusValues()),
			"amount":         engine.DecimalField(func(s Subscription) decimal.NullDecimal { return s.Amount }),
			"transaction_id": engine.StringField(func(s Subscription) string { return s.TransactionID }),
		},
		Searchable: []string{"id", "user_name", "user_email", "transaction_id"},
		DateField:  "purchased_at",
		GroupBy:    "plan",
		Outcome: func(s Subscription) engine.Outcome {
			switch s.Status {
			case enums.SubscriptionStatusActive, enums.SubscriptionStatusExpired:
				return engine.OutcomeSuccess
			case enums.SubscriptionStatusFailed:
				return engine.OutcomeFailure
			}
			return engine.OutcomeNone
		},
		Amount:      func(s Subscription) decimal.NullDecimal { return s.Amount },
		Actor:       func(s Subscription) string { return s.UserEmail },
		DefaultSort: engine.SortSpec{Key: "purchased_at", Direction: enums.SortDescending},
	}
}

// ReferralSchema describes Referral, grouped by status.
func ReferralSchema() engine.Schema[Referral] {
	return engine.Schema[Referral]{
		Name: "referrals",
		ID:   func(r Referral) string { return r.ID },
		Fields: map[string]engine.Field[Referral]{
			"id":             engine.StringField(func(r Referral) string { return r.ID }),
			"date":           engine.TimeField(func(r Referral) string { return r.Date }),
			"referrer_name":  engine.StringField(func(r Referral) string { return r.ReferrerName }),
			"referrer_email": engine.StringField(func(r Referral) string { return r.ReferrerEmail }),
			"referee_name":   engine.StringField(func(r Referral) string { return r.RefereeName }),
			"referee_email":  engine.StringField(func(r Referral) string { return r.RefereeEmail }),
			"code":           engine.StringField(func(r Referral) string { return r.Code }),
			"status":         engine.EnumField(func(r Referral) string { return string(r.Status) }, enums.ReferralStatusValues()),
			"reward":         engine.DecimalField(func(r Referral) decimal.NullDecimal { return r.Reward }),
		},
		Searchable: []string{"id", "referrer_name", "referrer_email", "referee_name", "referee_email", "code"},
		DateField:  "date",
		GroupBy:    "status",
		Outcome: func(r Referral) engine.Outcome {
			switch r.Status {
			case enums.ReferralStatusCompleted, enums.ReferralStatusRewarded:
				return engine.OutcomeSuccess
			case enums.ReferralStatusRejected:
				return engine.OutcomeFailure
			}
			return engine.OutcomeNone
		},
		Amount:      func(r Referral) decimal.NullDecimal { return r.Reward },
		Actor:       func(r Referral) string { return r.ReferrerEmail },
		DefaultSort: engine.SortSpec{Key: "date", Direction: enums.SortDescending},
	}
}

// OrderSchema describes Order, grouped by status.
func OrderSchema() engine.Schema[Order] {
	return engine.Schema[Order]{
		Name: "orders",
		ID:   func(o Order) string { return o.ID },
		Fields: map[string]engine.Field[Order]{
			"id":              engine.StringField(func(o Order) string { return o.ID }),
			"date":            engine.TimeField(func(o Order) string { return o.Date }),
			"customer":        engine.StringField(func(o Order) string { return o.Customer }),
			"seller":          engine.StringField(func(o Order) string { return o.Seller }),
			"destination":     engine.StringField(func(o Order) string { return o.Destination }),
			"tracking_number": engine.OptionalStringField(func(o Order) *string { return o.TrackingNumber }),
			"status":          engine.EnumField(func(o Order) string { return string(o.Status) }, enums.OrderStatusValues()),
			"total":           engine.DecimalField(func(o Order) decimal.NullDecimal { return o.Total }),
		},
		Searchable: []string{"id", "customer", "seller", "destination", "tracking_number"},
		DateField:  "date",
		GroupBy:    "status",
		Outcome: func(o Order) engine.Outcome {
			switch o.Status {
			case enums.OrderStatusDelivered:
				return engine.OutcomeSuccess
			case enums.OrderStatusCancelled, enums.OrderStatusReturned:
				return engine.OutcomeFailure
			}
			return engine.OutcomeNone
		},
		Amount:      func(o Order) decimal.NullDecimal { return o.Total },
		Actor:       func(o Order) string { return o.Customer },
		DefaultSort: engine.SortSpec{Key: "date", Direction: enums.SortDescending},
	}
}
