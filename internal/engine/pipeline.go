package engine

import (
	"github.com/angelmondragon/packfinderz-admin/pkg/pagination"
)

// Result is everything one screen needs for a single interaction cycle.
type Result[T any] struct {
	pagination.Page[T]
	Groups  []AggregateRow `json:"groups"`
	Summary Summary        `json:"summary"`
}

// Prepare filters and sorts records without paginating them; exports use it directly.
func Prepare[T any](records []T, schema Schema[T], q Query) []T {
	n := q.Normalize()
	sortSpec := n.Sort
	if sortSpec.Key == "" {
		sortSpec = schema.DefaultSort
	}
	return Sort(Filter(records, schema, n), schema, sortSpec)
}

// Run executes filter → sort → paginate, and aggregates over the full filtered set.
func Run[T any](records []T, schema Schema[T], q Query) Result[T] {
	n := q.Normalize()
	prepared := Prepare(records, schema, n)
	return Result[T]{
		Page:    pagination.Paginate(prepared, pagination.Params{Page: n.Page, PageSize: n.PageSize}),
		Groups:  Aggregate(prepared, schema),
		Summary: Summarize(prepared, schema),
	}
}
