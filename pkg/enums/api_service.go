package enums

import "fmt"

// APIService names the third-party provider a usage log entry was billed against.
type APIService string

const (
	APIServiceOpenAI     APIService = "OpenAI"
	APIServiceAnthropic  APIService = "Anthropic"
	APIServiceGoogleMaps APIService = "Google Maps"
	APIServiceTwilio     APIService = "Twilio"
	APIServiceSendGrid   APIService = "SendGrid"
	APIServiceStripe     APIService = "Stripe"
)

var validAPIServices = []APIService{
	APIServiceOpenAI,
	APIServiceAnthropic,
	APIServiceGoogleMaps,
	APIServiceTwilio,
	APIServiceSendGrid,
	APIServiceStripe,
}

// String implements fmt.Stringer.
func (s APIService) String() string {
	return string(s)
}

// IsValid reports whether the value is a known APIService.
func (s APIService) IsValid() bool {
	for _, candidate := range validAPIServices {
		if candidate == s {
			return true
		}
	}
	return false
}

// APIServiceValues returns the declared services in display order.
func APIServiceValues() []string {
	return stringValues(validAPIServices)
}

// ParseAPIService converts raw input into an APIService.
func ParseAPIService(value string) (APIService, error) {
	for _, candidate := range validAPIServices {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid api service %q", value)
}
