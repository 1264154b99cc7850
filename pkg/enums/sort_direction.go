package enums

import (
	"fmt"
	"strings"
)

type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// String implements fmt.Stringer.
func (d SortDirection) String() string {
	return string(d)
}

// IsValid reports whether the direction is recognized.
func (d SortDirection) IsValid() bool {
	return d == SortAscending || d == SortDescending
}

// Toggle flips the direction; an unset direction toggles to ascending.
func (d SortDirection) Toggle() SortDirection {
	if d == SortAscending {
		return SortDescending
	}
	return SortAscending
}

// ParseSortDirection accepts asc/desc and their long forms, case-insensitively.
func ParseSortDirection(value string) (SortDirection, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "asc", "ascending":
		return SortAscending, nil
	case "desc", "descending":
		return SortDescending, nil
	}
	return "", fmt.Errorf("invalid sort direction %q", value)
}
