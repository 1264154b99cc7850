// Package records holds the back-office record types, their engine schemas and
// export column sets, and the in-memory supplier the admin screens read from.
package records

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/packfinderz-admin/pkg/enums"
)

// LogEntry is one third-party API call made on behalf of a user.
type LogEntry struct {
	ID           string              `json:"id"`
	Timestamp    string              `json:"timestamp"`
	Service      enums.APIService    `json:"service"`
	Endpoint     string              `json:"endpoint"`
	UserID       string              `json:"user_id"`
	UserEmail    string              `json:"user_email"`
	Status       enums.LogStatus     `json:"status"`
	DurationMS   *int64              `json:"duration_ms,omitempty"`
	Cost         decimal.NullDecimal `json:"cost"`
	ErrorMessage *string             `json:"error_message,omitempty"`
	Details      map[string]any      `json:"details,omitempty"`
}

// Subscription is one plan purchase.
type Subscription struct {
	ID            string                   `json:"id"`
	PurchasedAt   string                   `json:"purchased_at"`
	UserName      string                   `json:"user_name"`
	UserEmail     string                   `json:"user_email"`
	Plan          enums.SubscriptionPlan   `json:"plan"`
	Status        enums.SubscriptionStatus `json:"status"`
	Amount        decimal.NullDecimal      `json:"amount"`
	TransactionID string                   `json:"transaction_id"`
}

// Referral links a referrer to the user they invited.
type Referral struct {
	ID            string               `json:"id"`
	Date          string               `json:"date"`
	ReferrerName  string               `json:"referrer_name"`
	ReferrerEmail string               `json:"referrer_email"`
	RefereeName   string               `json:"referee_name"`
	RefereeEmail  string               `json:"referee_email"`
	Code          string               `json:"code"`
	Status        enums.ReferralStatus `json:"status"`
	Reward        decimal.NullDecimal  `json:"reward"`
}

// Order is a marketplace order as seen by logistics.
type Order struct {
	ID             string              `json:"id"`
	Date           string              `json:"date"`
	Customer       string              `json:"customer"`
	Seller         string              `json:"seller"`
	Destination    string              `json:"destination"`
	TrackingNumber *string             `json:"tracking_number,omitempty"`
	Status         enums.OrderStatus   `json:"status"`
	Total          decimal.NullDecimal `json:"total"`
}
