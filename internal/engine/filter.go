package engine

import (
	"strings"
	"time"

	"github.com/angelmondragon/packfinderz-admin/internal/format"
	"github.com/angelmondragon/packfinderz-admin/pkg/enums"
)

type matcher[T any] struct {
	schema  Schema[T]
	term    string
	filters map[string]string
	from    *time.Time
	to      *time.Time
	ranged  bool
}

func newMatcher[T any](schema Schema[T], q Query) matcher[T] {
	n := q.Normalize()
	m := matcher[T]{
		schema:  schema,
		term:    strings.ToLower(n.Search),
		filters: n.Filters,
	}
	if r := n.DateRange; r != nil {
		m.from, m.to = r.From, r.To
		m.ranged = true
	}
	return m
}

func (m matcher[T]) match(rec T) bool {
	return m.matchSearch(rec) && m.matchFilters(rec) && m.matchRange(rec)
}

func (m matcher[T]) matchSearch(rec T) bool {
	if m.term == "" {
		return true
	}
	for _, key := range m.schema.Searchable {
		f, ok := m.schema.Fields[key]
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(f.searchText(rec)), m.term) {
			return true
		}
	}
	return false
}

func (m matcher[T]) matchFilters(rec T) bool {
	for key, want := range m.filters {
		if want == enums.FilterAll {
			continue
		}
		f, ok := m.schema.Fields[key]
		if !ok {
			return false
		}
		got, ok := f.text(rec)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// matchRange fails closed: with a range active, unparsable timestamps never match.
func (m matcher[T]) matchRange(rec T) bool {
	if !m.ranged {
		return true
	}
	f, ok := m.schema.Fields[m.schema.DateField]
	if !ok {
		return false
	}
	raw, ok := f.text(rec)
	if !ok {
		return false
	}
	ts, ok := format.ParseTimestamp(raw)
	if !ok {
		return false
	}
	if m.from != nil && ts.Before(*m.from) {
		return false
	}
	if m.to != nil && ts.After(*m.to) {
		return false
	}
	return true
}

// Filter returns the records matching every active predicate of q, in input order.
func Filter[T any](records []T, schema Schema[T], q Query) []T {
	m := newMatcher(schema, q)
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if m.match(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Matches reports whether a single record passes q.
func Matches[T any](rec T, schema Schema[T], q Query) bool {
	return newMatcher(schema, q).match(rec)
}
