package enums

import "fmt"

// LogStatus is the outcome of a single third-party API call.
type LogStatus string

const (
	LogStatusSuccess LogStatus = "Success"
	LogStatusFailed  LogStatus = "Failed"
)

var validLogStatuses = []LogStatus{
	LogStatusSuccess,
	LogStatusFailed,
}

// String implements fmt.Stringer.
func (s LogStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known LogStatus.
func (s LogStatus) IsValid() bool {
	for _, candidate := range validLogStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

func LogStatusValues() []string {
	return stringValues(validLogStatuses)
}

// ParseLogStatus converts raw input into a LogStatus.
func ParseLogStatus(value string) (LogStatus, error) {
	for _, candidate := range validLogStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid log status %q", value)
}
