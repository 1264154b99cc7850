package enums

import "fmt"

// SubscriptionPlan is the tier a seller purchased.
type SubscriptionPlan string

const (
	SubscriptionPlanBasic      SubscriptionPlan = "Basic"
	SubscriptionPlanPro        SubscriptionPlan = "Pro"
	SubscriptionPlanEnterprise SubscriptionPlan = "Enterprise"
)

var validSubscriptionPlans = []SubscriptionPlan{
	SubscriptionPlanBasic,
	SubscriptionPlanPro,
	SubscriptionPlanEnterprise,
}

// String implements fmt.Stringer.
func (p SubscriptionPlan) String() string {
	return string(p)
}

// IsValid reports whether the value is a known SubscriptionPlan.
func (p SubscriptionPlan) IsValid() bool {
	for _, candidate := range validSubscriptionPlans {
		if candidate == p {
			return true
		}
	}
	return false
}

func SubscriptionPlanValues() []string {
	return stringValues(validSubscriptionPlans)
}

// ParseSubscriptionPlan converts raw input into a SubscriptionPlan.
func ParseSubscriptionPlan(value string) (SubscriptionPlan, error) {
	for _, candidate := range validSubscriptionPlans {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid subscription plan %q", value)
}

// SubscriptionStatus tracks the payment state of a subscription purchase.
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "Active"
	SubscriptionStatusExpired   SubscriptionStatus = "Expired"
	SubscriptionStatusCancelled SubscriptionStatus = "Cancelled"
	SubscriptionStatusFailed    SubscriptionStatus = "Failed"
)

var validSubscriptionStatuses = []SubscriptionStatus{
	SubscriptionStatusActive,
	SubscriptionStatusExpired,
	SubscriptionStatusCancelled,
	SubscriptionStatusFailed,
}

// String implements fmt.Stringer.
func (s SubscriptionStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SubscriptionStatus.
func (s SubscriptionStatus) IsValid() bool {
	for _, candidate := range validSubscriptionStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

func SubscriptionStatusValues() []string {
	return stringValues(validSubscriptionStatuses)
}

// ParseSubscriptionStatus converts raw input into a SubscriptionStatus.
func ParseSubscriptionStatus(value string) (SubscriptionStatus, error) {
	for _, candidate := range validSubscriptionStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid subscription status %q", value)
}
