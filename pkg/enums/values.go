package enums

const (
	// FilterAll disables an enum equality filter.
	FilterAll = "All"
	// GroupTotal labels the synthetic grand-total aggregate row.
	GroupTotal = "Total"
	// GroupUnknown collects records whose category is outside the declared enum.
	GroupUnknown = "Unknown"
)

func stringValues[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
