package enums

// FieldKind selects the comparator used when sorting on a field.
type FieldKind string

const (
	FieldKindString FieldKind = "string"
	FieldKindNumber FieldKind = "number"
	FieldKindTime   FieldKind = "time"
)

// IsValid reports whether the kind is recognized.
func (k FieldKind) IsValid() bool {
	switch k {
	case FieldKindString, FieldKindNumber, FieldKindTime:
		return true
	}
	return false
}
