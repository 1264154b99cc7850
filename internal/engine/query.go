package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"maps"
	"strings"
	"time"

	"github.com/angelmondragon/packfinderz-admin/pkg/enums"
	pkgerrors "github.com/angelmondragon/packfinderz-admin/pkg/errors"
	"github.com/angelmondragon/packfinderz-admin/pkg/pagination"
)

// DateRange is an inclusive timestamp bound; either side may be open.
type DateRange struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// LastDays returns the range covering the n days up to and including now. now is
// truncated to the minute so repeated preset queries share a cache key.
func LastDays(now time.Time, n int) *DateRange {
	to := now.Truncate(time.Minute)
	from := to.AddDate(0, 0, -n)
	return &DateRange{From: &from, To: &to}
}

// Normalized moves To to the end of its day so the final day is fully included.
func (r *DateRange) Normalized() *DateRange {
	if r == nil || (r.From == nil && r.To == nil) {
		return nil
	}
	out := &DateRange{}
	if r.From != nil {
		from := *r.From
		out.From = &from
	}
	if r.To != nil {
		to := endOfDay(*r.To)
		out.To = &to
	}
	return out
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// SortSpec selects the sort key and direction.
type SortSpec struct {
	Key       string              `json:"key,omitempty"`
	Direction enums.SortDirection `json:"direction,omitempty"`
}

// Query is the combined filter/sort/pagination state of one pipeline invocation.
type Query struct {
	Search    string            `json:"search,omitempty"`
	Filters   map[string]string `json:"filters,omitempty"`
	DateRange *DateRange        `json:"date_range,omitempty"`
	Sort      SortSpec          `json:"sort"`
	Page      int               `json:"page,omitempty"`
	PageSize  int               `json:"page_size,omitempty"`
}

// Normalize returns a copy with a trimmed search term, "All"/empty filters dropped,
// an end-of-day range bound and pagination defaults applied.
func (q Query) Normalize() Query {
	out := Query{
		Search:    strings.TrimSpace(q.Search),
		DateRange: q.DateRange.Normalized(),
		Sort:      q.Sort,
		Page:      q.Page,
		PageSize:  pagination.NormalizePageSize(q.PageSize),
	}
	for key, value := range q.Filters {
		value = strings.TrimSpace(value)
		if value == "" || value == enums.FilterAll {
			continue
		}
		if out.Filters == nil {
			out.Filters = make(map[string]string, len(q.Filters))
		}
		out.Filters[key] = value
	}
	out.Sort.Key = strings.TrimSpace(out.Sort.Key)
	if out.Sort.Key != "" && !out.Sort.Direction.IsValid() {
		out.Sort.Direction = enums.SortAscending
	}
	if out.Page < 1 {
		out.Page = 1
	}
	return out
}

// WithoutPaging is the view used by exports and aggregates: same predicates, no page.
func (q Query) WithoutPaging() Query {
	out := q.Normalize()
	out.Page = 0
	out.PageSize = 0
	return out
}

// CacheKey hashes the unpaginated query so identical exports share one key.
func (q Query) CacheKey(dataset enums.Dataset, format enums.ExportFormat) string {
	payload := struct {
		Dataset enums.Dataset      `json:"dataset"`
		Format  enums.ExportFormat `json:"format"`
		Query   Query              `json:"query"`
	}{dataset, format, q.WithoutPaging()}
	raw, _ := json.Marshal(payload)
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// ResetOnChange returns next with its page reset to 1 when the page size or any
// predicate differs from prev.
func ResetOnChange(prev, next Query) Query {
	a, b := prev.Normalize(), next.Normalize()
	if a.PageSize != b.PageSize || a.Search != b.Search || a.Sort != b.Sort ||
		!maps.Equal(a.Filters, b.Filters) || !sameRange(a.DateRange, b.DateRange) {
		next.Page = 1
	}
	return next
}

func sameRange(a, b *DateRange) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return sameTime(a.From, b.From) && sameTime(a.To, b.To)
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// ValidateQuery checks filter keys, filter values for closed enums, the sort key
// and range ordering against schema.
func ValidateQuery[T any](q Query, schema Schema[T]) error {
	return validateQuery(q, schema.Fields)
}

func validateQuery[T any](q Query, fields map[string]Field[T]) error {
	problems := map[string]string{}
	n := q.Normalize()
	for key, value := range n.Filters {
		f, ok := fields[key]
		if !ok {
			problems["filter."+key] = "unknown field"
			continue
		}
		if len(f.Values) > 0 && !contains(f.Values, value) {
			problems["filter."+key] = "must be one of " + strings.Join(append([]string{enums.FilterAll}, f.Values...), ", ")
		}
	}
	if n.Sort.Key != "" {
		if _, ok := fields[n.Sort.Key]; !ok {
			problems["sort"] = "unknown field"
		}
	}
	if r := n.DateRange; r != nil && r.From != nil && r.To != nil && r.To.Before(*r.From) {
		problems["to"] = "must not be before from"
	}
	if len(problems) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid query").WithDetails(problems)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
