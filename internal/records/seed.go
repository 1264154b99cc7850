package records

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/packfinderz-admin/pkg/enums"
)

func money(v string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(v))
}

func ms(v int64) *int64 { return &v }

func text(v string) *string { return &v }

// SeedLogs is a morning of API usage: twelve calls across six services over 55 minutes.
func SeedLogs() []LogEntry {
	return []LogEntry{
		{ID: "log001", Timestamp: "2026-01-15T10:00:00Z", Service: enums.APIServiceOpenAI, Endpoint: "/v1/chat/completions", UserID: "usr_101", UserEmail: "alice@greenleaf.co", Status: enums.LogStatusSuccess, DurationMS: ms(850), Cost: money("0.0240"), Details: map[string]any{"model": "gpt-4o", "tokens": 1200}},
		{ID: "log002", Timestamp: "2026-01-15T10:05:00Z", Service: enums.APIServiceAnthropic, Endpoint: "/v1/messages", UserID: "usr_102", UserEmail: "bob@highdesert.com", Status: enums.LogStatusSuccess, DurationMS: ms(1250), Cost: money("0.0180"), Details: map[string]any{"model": "claude-sonnet", "tokens": 900}},
		{ID: "log003", Timestamp: "2026-01-15T10:10:00Z", Service: enums.APIServiceGoogleMaps, Endpoint: "/maps/api/geocode/json", UserID: "usr_103", UserEmail: "carol@mesafarms.com", Status: enums.LogStatusSuccess, DurationMS: ms(320), Cost: money("0.0050"), Details: map[string]any{"address": "Denver, CO"}},
		{ID: "log004", Timestamp: "2026-01-15T10:15:00Z", Service: enums.APIServiceTwilio, Endpoint: "/2010-04-01/Accounts/AC71/Messages.json", UserID: "usr_101", UserEmail: "alice@greenleaf.co", Status: enums.LogStatusSuccess, DurationMS: ms(640), Cost: money("0.0079"), Details: map[string]any{"to": "+15550100", "segments": 1}},
		{ID: "log005", Timestamp: "2026-01-15T10:20:00Z", Service: enums.APIServiceSendGrid, Endpoint: "/v3/mail/send", UserID: "usr_104", UserEmail: "dave@northstar.io", Status: enums.LogStatusFailed, DurationMS: ms(2100), ErrorMessage: text("429 Too Many Requests"), Details: map[string]any{"template": "order-confirmation"}},
		{ID: "log006", Timestamp: "2026-01-15T10:25:00Z", Service: enums.APIServiceStripe, Endpoint: "/v1/payment_intents", UserID: "usr_105", UserEmail: "erin@canyonroots.com", Status: enums.LogStatusSuccess, DurationMS: ms(450), Cost: money("0.3000"), Details: map[string]any{"amount": 1299, "currency": "usd"}},
		{ID: "log007", Timestamp: "2026-01-15T10:30:00Z", Service: enums.APIServiceOpenAI, Endpoint: "/v1/embeddings", UserID: "usr_102", UserEmail: "bob@highdesert.com", Status: enums.LogStatusSuccess, DurationMS: ms(980), Cost: money("0.0120"), Details: map[string]any{"model": "text-embedding-3-small", "inputs": 64}},
		{ID: "log008", Timestamp: "2026-01-15T10:35:00Z", Service: enums.APIServiceAnthropic, Endpoint: "/v1/messages", UserID: "usr_103", UserEmail: "carol@mesafarms.com", Status: enums.LogStatusFailed, DurationMS: ms(125000), Cost: money("0.0000"), ErrorMessage: text("upstream timeout"), Details: map[string]any{"model": "claude-sonnet", "retries": 2}},
		{ID: "log009", Timestamp: "2026-01-15T10:40:00Z", Service: enums.APIServiceGoogleMaps, Endpoint: "/maps/api/directions/json", UserID: "usr_106", UserEmail: "frank@bluemesa.co", Status: enums.LogStatusSuccess, DurationMS: ms(290), Cost: money("0.0050"), Details: map[string]any{"origin": "Boulder, CO", "destination": "Denver, CO"}},
		{ID: "log010", Timestamp: "2026-01-15T10:45:00Z", Service: enums.APIServiceTwilio, Endpoint: "/2010-04-01/Accounts/AC71/Messages.json", UserID: "usr_104", UserEmail: "dave@northstar.io", Status: enums.LogStatusSuccess, DurationMS: ms(710), Cost: money("0.0079"), Details: map[string]any{"to": "+15550142", "segments": 1}},
		{ID: "log011", Timestamp: "2026-01-15T10:50:00Z", Service: enums.APIServiceSendGrid, Endpoint: "/v3/mail/send", UserID: "usr_105", UserEmail: "erin@canyonroots.com", Status: enums.LogStatusSuccess, Details: map[string]any{"template": "weekly-digest"}},
		{ID: "log012", Timestamp: "2026-01-15T10:55:00Z", Service: enums.APIServiceStripe, Endpoint: "/v1/refunds", UserID: "usr_106", UserEmail: "frank@bluemesa.co", Status: enums.LogStatusSuccess, DurationMS: ms(520), Cost: money("0.3000"), Details: map[string]any{"amount": 450, "currency": "usd"}},
	}
}

// SeedSubscriptions covers every plan and status.
func SeedSubscriptions() []Subscription {
	return []Subscription{
		{ID: "sub001", PurchasedAt: "2025-12-01T09:12:00Z", UserName: "Greenleaf Co", UserEmail: "billing@greenleaf.co", Plan: enums.SubscriptionPlanPro, Status: enums.SubscriptionStatusActive, Amount: money("49.00"), TransactionID: "txn_8F2K1"},
		{ID: "sub002", PurchasedAt: "2025-12-03T14:40:00Z", UserName: "High Desert Supply", UserEmail: "ops@highdesert.com", Plan: enums.SubscriptionPlanBasic, Status: enums.SubscriptionStatusExpired, Amount: money("19.00"), TransactionID: "txn_8F2K7"},
		{ID: "sub003", PurchasedAt: "2025-12-10T08:05:00Z", UserName: "Mesa Farms", UserEmail: "carol@mesafarms.com", Plan: enums.SubscriptionPlanEnterprise, Status: enums.SubscriptionStatusActive, Amount: money("1299.00"), TransactionID: "txn_8F3A2"},
		{ID: "sub004", PurchasedAt: "2025-12-18T17:22:00Z", UserName: "Northstar Labs", UserEmail: "dave@northstar.io", Plan: enums.SubscriptionPlanPro, Status: enums.SubscriptionStatusFailed, Amount: money("49.00"), TransactionID: "txn_8F3Q9"},
		{ID: "sub005", PurchasedAt: "2026-01-02T11:00:00Z", UserName: "Canyon Roots", UserEmail: "erin@canyonroots.com", Plan: enums.SubscriptionPlanBasic, Status: enums.SubscriptionStatusCancelled, Amount: money("19.00"), TransactionID: "txn_8F4C0"},
		{ID: "sub006", PurchasedAt: "2026-01-06T13:30:00Z", UserName: "Blue Mesa", UserEmail: "frank@bluemesa.co", Plan: enums.SubscriptionPlanPro, Status: enums.SubscriptionStatusActive, Amount: money("49.00"), TransactionID: "txn_8F4H5"},
		{ID: "sub007", PurchasedAt: "2026-01-09T10:45:00Z", UserName: "Greenleaf Co", UserEmail: "billing@greenleaf.co", Plan: enums.SubscriptionPlanEnterprise, Status: enums.SubscriptionStatusActive, Amount: money("1299.00"), TransactionID: "txn_8F4M3"},
		{ID: "sub008", PurchasedAt: "2026-01-14T16:05:00Z", UserName: "Sierra Growers", UserEmail: "hello@sierragrowers.com", Plan: enums.SubscriptionPlanBasic, Status: enums.SubscriptionStatusActive, TransactionID: "txn_trial_01"},
	}
}

// SeedReferrals covers every referral status.
func SeedReferrals() []Referral {
	return []Referral{
		{ID: "ref001", Date: "2025-12-04T10:00:00Z", ReferrerName: "Alice Park", ReferrerEmail: "alice@greenleaf.co", RefereeName: "Gina Ortiz", RefereeEmail: "gina@valleyfresh.com", Code: "ALICE10", Status: enums.ReferralStatusRewarded, Reward: money("25.00")},
		{ID: "ref002", Date: "2025-12-11T15:30:00Z", ReferrerName: "Bob Chen", ReferrerEmail: "bob@highdesert.com", RefereeName: "Hank Ruiz", RefereeEmail: "hank@ruizfarms.com", Code: "BOB-2025", Status: enums.ReferralStatusCompleted, Reward: money("25.00")},
		{ID: "ref003", Date: "2025-12-20T09:45:00Z", ReferrerName: "Alice Park", ReferrerEmail: "alice@greenleaf.co", RefereeName: "Ivy Lang", RefereeEmail: "ivy@langco.com", Code: "ALICE10", Status: enums.ReferralStatusPending},
		{ID: "ref004", Date: "2026-01-03T12:10:00Z", ReferrerName: "Carol Diaz", ReferrerEmail: "carol@mesafarms.com", RefereeName: "Jack Moss", RefereeEmail: "jack@mossgrow.com", Code: "MESA5", Status: enums.ReferralStatusRejected, Reward: money("0")},
		{ID: "ref005", Date: "2026-01-07T08:20:00Z", ReferrerName: "Dave Kim", ReferrerEmail: "dave@northstar.io", RefereeName: "Kara Wells", RefereeEmail: "kara@wellsbotanicals.com", Code: "NORTH20", Status: enums.ReferralStatusRewarded, Reward: money("50.00")},
		{ID: "ref006", Date: "2026-01-10T19:00:00Z", ReferrerName: "Erin Fox", ReferrerEmail: "erin@canyonroots.com", RefereeName: "Liam Shaw", RefereeEmail: "liam@shawsupply.com", Code: "ROOTS", Status: enums.ReferralStatusCompleted, Reward: money("25.00")},
		{ID: "ref007", Date: "2026-01-13T07:55:00Z", ReferrerName: "Bob Chen", ReferrerEmail: "bob@highdesert.com", RefereeName: "Mia Cole", RefereeEmail: "mia@colefarms.com", Code: "BOB-2025", Status: enums.ReferralStatusPending},
		{ID: "ref008", Date: "2026-01-16T13:25:00Z", ReferrerName: "Frank Lee", ReferrerEmail: "frank@bluemesa.co", RefereeName: "Nora Hale", RefereeEmail: "nora@halegardens.com", Code: "BLUE15", Status: enums.ReferralStatusRewarded, Reward: money("37.50")},
	}
}

// SeedOrders is ten orders, each on a distinct date.
func SeedOrders() []Order {
	return []Order{
		{ID: "ord1001", Date: "2026-01-02T09:15:00Z", Customer: "Greenleaf Co", Seller: "Mesa Farms", Destination: "Denver, CO", TrackingNumber: text("1Z999AA10123456784"), Status: enums.OrderStatusDelivered, Total: money("1240.00")},
		{ID: "ord1002", Date: "2026-01-03T11:40:00Z", Customer: "High Desert Supply", Seller: "Blue Mesa", Destination: "Santa Fe, NM", TrackingNumber: text("1Z999AA10123456785"), Status: enums.OrderStatusShipped, Total: money("385.50")},
		{ID: "ord1003", Date: "2026-01-05T14:05:00Z", Customer: "Northstar Labs", Seller: "Mesa Farms", Destination: "Boulder, CO", Status: enums.OrderStatusCancelled, Total: money("99.99")},
		{ID: "ord1004", Date: "2026-01-06T08:30:00Z", Customer: "Canyon Roots", Seller: "Sierra Growers", Destination: "Flagstaff, AZ", Status: enums.OrderStatusPending, Total: money("2150.00")},
		{ID: "ord1005", Date: "2026-01-08T16:20:00Z", Customer: "Greenleaf Co", Seller: "Sierra Growers", Destination: "Denver, CO", Status: enums.OrderStatusProcessing, Total: money("760.25")},
		{ID: "ord1006", Date: "2026-01-09T10:10:00Z", Customer: "Valley Fresh", Seller: "Blue Mesa", Destination: "Albuquerque, NM", TrackingNumber: text("9400111899223344556677"), Status: enums.OrderStatusReturned, Total: money("412.00")},
		{ID: "ord1007", Date: "2026-01-11T13:55:00Z", Customer: "Ruiz Farms", Seller: "Mesa Farms", Destination: "Pueblo, CO", TrackingNumber: text("1Z999AA10123456786"), Status: enums.OrderStatusDelivered, Total: money("128.40")},
		{ID: "ord1008", Date: "2026-01-12T07:45:00Z", Customer: "Lang Co", Seller: "Canyon Roots", Destination: "Tucson, AZ", TrackingNumber: text("9400111899223344556678"), Status: enums.OrderStatusShipped, Total: money("905.00")},
		{ID: "ord1009", Date: "2026-01-14T18:30:00Z", Customer: "Moss Grow", Seller: "Blue Mesa", Destination: "Las Cruces, NM", Status: enums.OrderStatusPending},
		{ID: "ord1010", Date: "2026-01-15T12:00:00Z", Customer: "Wells Botanicals", Seller: "Greenleaf Co", Destination: "Colorado Springs, CO", TrackingNumber: text("1Z999AA10123456787"), Status: enums.OrderStatusDelivered, Total: money("3075.75")},
	}
}
