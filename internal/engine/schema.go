// Package engine is the filter → sort → paginate/aggregate pipeline shared by every
// back-office list screen. Each record type is described once by a Schema; every
// operation is a pure function of (records, schema, query) and never mutates its input.
package engine

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/packfinderz-admin/pkg/enums"
	pkgerrors "github.com/angelmondragon/packfinderz-admin/pkg/errors"
)

// Outcome classifies a record for success/failure tallies.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSuccess
	OutcomeFailure
)

// Field exposes one named attribute of T to the filter, sort and aggregate stages.
type Field[T any] struct {
	Kind enums.FieldKind
	// Text returns the raw value; false means null.
	Text func(T) (string, bool)
	// Number is used instead of Text for numeric fields; false means null.
	Number func(T) (float64, bool)
	// Search overrides Text when matching free-text search.
	Search func(T) string
	// Values lists the closed enumeration for categorical fields, in display order.
	Values []string
}

func (f Field[T]) text(rec T) (string, bool) {
	if f.Text != nil {
		return f.Text(rec)
	}
	if f.Number != nil {
		if n, ok := f.Number(rec); ok {
			return strconv.FormatFloat(n, 'f', -1, 64), true
		}
	}
	return "", false
}

func (f Field[T]) searchText(rec T) string {
	if f.Search != nil {
		return f.Search(rec)
	}
	v, _ := f.text(rec)
	return v
}

// StringField declares a plain, always-present string attribute.
func StringField[T any](get func(T) string) Field[T] {
	return Field[T]{
		Kind: enums.FieldKindString,
		Text: func(rec T) (string, bool) { return get(rec), true },
	}
}

// OptionalStringField declares a string attribute where nil means null.
func OptionalStringField[T any](get func(T) *string) Field[T] {
	return Field[T]{
		Kind: enums.FieldKindString,
		Text: func(rec T) (string, bool) {
			if v := get(rec); v != nil {
				return *v, true
			}
			return "", false
		},
	}
}

// EnumField declares a categorical attribute drawn from a closed set of values.
func EnumField[T any](get func(T) string, values []string) Field[T] {
	f := StringField(get)
	f.Values = append([]string(nil), values...)
	return f
}

// TimeField declares an ISO-8601 timestamp stored as a string and parsed on demand.
func TimeField[T any](get func(T) string) Field[T] {
	return Field[T]{
		Kind: enums.FieldKindTime,
		Text: func(rec T) (string, bool) { return get(rec), true },
	}
}

// NumberField declares a numeric attribute; a false second return means null.
func NumberField[T any](get func(T) (float64, bool)) Field[T] {
	return Field[T]{Kind: enums.FieldKindNumber, Number: get}
}

// DecimalField declares a nullable monetary attribute.
func DecimalField[T any](get func(T) decimal.NullDecimal) Field[T] {
	return Field[T]{
		Kind: enums.FieldKindNumber,
		Number: func(rec T) (float64, bool) {
			v := get(rec)
			if !v.Valid {
				return 0, false
			}
			return v.Decimal.InexactFloat64(), true
		},
	}
}

// JSONField declares an arbitrary payload matched by its JSON serialisation.
func JSONField[T any](get func(T) any) Field[T] {
	text := func(rec T) (string, bool) {
		v := get(rec)
		if v == nil {
			return "", false
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return "", false
		}
		return string(raw), true
	}
	return Field[T]{
		Kind: enums.FieldKindString,
		Text: text,
		Search: func(rec T) string {
			s, _ := text(rec)
			return s
		},
	}
}

// Schema is the per-domain field-accessor map the engine is instantiated with.
type Schema[T any] struct {
	Name       string
	ID         func(T) string
	Fields     map[string]Field[T]
	Searchable []string
	DateField  string
	GroupBy    string
	Outcome    func(T) Outcome
	Amount     func(T) decimal.NullDecimal
	// Actor identifies the user behind a record for distinct-user counts; optional.
	Actor       func(T) string
	DefaultSort SortSpec
}

// Field returns the named field.
func (s Schema[T]) Field(name string) (Field[T], bool) {
	f, ok := s.Fields[name]
	return f, ok
}

// Validate checks that every key the schema refers to is declared.
func (s Schema[T]) Validate() error {
	problems := map[string]string{}
	if s.ID == nil {
		problems["id"] = "accessor is required"
	}
	for _, key := range s.Searchable {
		if _, ok := s.Fields[key]; !ok {
			problems["searchable."+key] = "unknown field"
		}
	}
	if s.DateField != "" {
		f, ok := s.Fields[s.DateField]
		switch {
		case !ok:
			problems["date_field"] = "unknown field"
		case f.Kind != enums.FieldKindTime:
			problems["date_field"] = "must be a time field"
		}
	}
	if s.GroupBy != "" {
		if _, ok := s.Fields[s.GroupBy]; !ok {
			problems["group_by"] = "unknown field"
		}
	}
	if s.DefaultSort.Key != "" {
		if _, ok := s.Fields[s.DefaultSort.Key]; !ok {
			problems["default_sort"] = "unknown field"
		}
	}
	for name, f := range s.Fields {
		if !f.Kind.IsValid() {
			problems["fields."+name] = "invalid kind"
		}
		if f.Text == nil && f.Number == nil {
			problems["fields."+name] = "accessor is required"
		}
	}
	if len(problems) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid schema "+s.Name).WithDetails(problems)
	}
	return nil
}
