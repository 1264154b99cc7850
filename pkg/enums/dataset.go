package enums

import (
	"fmt"
	"strings"
)

// Dataset names a back-office screen whose records flow through the analytics engine.
type Dataset string

const (
	DatasetLogs      Dataset = "logs"
	DatasetRevenue   Dataset = "revenue"
	DatasetReferrals Dataset = "referrals"
	DatasetOrders    Dataset = "orders"
)

var validDatasets = []Dataset{
	DatasetLogs,
	DatasetRevenue,
	DatasetReferrals,
	DatasetOrders,
}

// String implements fmt.Stringer.
func (d Dataset) String() string {
	return string(d)
}

// IsValid reports whether the dataset is recognized.
func (d Dataset) IsValid() bool {
	for _, candidate := range validDatasets {
		if candidate == d {
			return true
		}
	}
	return false
}

// Datasets returns every declared dataset.
func Datasets() []Dataset {
	return append([]Dataset(nil), validDatasets...)
}

// ParseDataset converts raw input into a Dataset.
func ParseDataset(value string) (Dataset, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range validDatasets {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid dataset %q", value)
}
