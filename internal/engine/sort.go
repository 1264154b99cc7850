package engine

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/angelmondragon/packfinderz-admin/internal/format"
	"github.com/angelmondragon/packfinderz-admin/pkg/enums"
)

type sortKey struct {
	valid bool
	num   float64
	str   string
}

func keyFor[T any](f Field[T], rec T) sortKey {
	switch f.Kind {
	case enums.FieldKindNumber:
		if f.Number != nil {
			n, ok := f.Number(rec)
			return sortKey{valid: ok, num: n}
		}
		raw, ok := f.text(rec)
		if !ok {
			return sortKey{}
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		return sortKey{valid: err == nil, num: n}
	case enums.FieldKindTime:
		raw, ok := f.text(rec)
		if !ok {
			return sortKey{}
		}
		ts, ok := format.ParseTimestamp(raw)
		if !ok {
			return sortKey{}
		}
		return sortKey{valid: true, num: float64(ts.UnixMilli())}
	default:
		raw, ok := f.text(rec)
		return sortKey{valid: ok, str: strings.ToLower(raw)}
	}
}

// compareAscending orders invalid keys after every valid key.
func compareAscending(kind enums.FieldKind, a, b sortKey) int {
	switch {
	case !a.valid && !b.valid:
		return 0
	case !a.valid:
		return 1
	case !b.valid:
		return -1
	}
	if kind == enums.FieldKindString {
		return strings.Compare(a.str, b.str)
	}
	return cmp.Compare(a.num, b.num)
}

// Sort returns a stably ordered copy of records. Null and unparsable values act as
// +∞: last when ascending, first when descending. An unknown key keeps input order.
func Sort[T any](records []T, schema Schema[T], spec SortSpec) []T {
	out := make([]T, len(records))
	copy(out, records)

	f, ok := schema.Fields[strings.TrimSpace(spec.Key)]
	if !ok {
		return out
	}

	keys := make([]sortKey, len(records))
	order := make([]int, len(records))
	for i, rec := range records {
		keys[i] = keyFor(f, rec)
		order[i] = i
	}

	desc := spec.Direction == enums.SortDescending
	slices.SortStableFunc(order, func(a, b int) int {
		c := compareAscending(f.Kind, keys[a], keys[b])
		if desc {
			return -c
		}
		return c
	})

	for i, idx := range order {
		out[i] = records[idx]
	}
	return out
}
