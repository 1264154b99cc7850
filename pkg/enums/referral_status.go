package enums

import "fmt"

// ReferralStatus tracks a referral from invite to payout.
type ReferralStatus string

const (
	ReferralStatusPending   ReferralStatus = "Pending"
	ReferralStatusCompleted ReferralStatus = "Completed"
	ReferralStatusRewarded  ReferralStatus = "Rewarded"
	ReferralStatusRejected  ReferralStatus = "Rejected"
)

var validReferralStatuses = []ReferralStatus{
	ReferralStatusPending,
	ReferralStatusCompleted,
	ReferralStatusRewarded,
	ReferralStatusRejected,
}

// String implements fmt.Stringer.
func (s ReferralStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ReferralStatus.
func (s ReferralStatus) IsValid() bool {
	for _, candidate := range validReferralStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

func ReferralStatusValues() []string {
	return stringValues(validReferralStatuses)
}

// ParseReferralStatus converts raw input into a ReferralStatus.
func ParseReferralStatus(value string) (ReferralStatus, error) {
	for _, candidate := range validReferralStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid referral status %q", value)
}
