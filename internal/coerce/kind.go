package coerce

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind is the destination value kind a raw extracted payload is coerced to.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindString
	KindStringList
	KindBool
)

// IsValid reports whether k is one of the defined destination kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindString, KindStringList, KindBool:
		return true
	default:
		return false
	}
}
