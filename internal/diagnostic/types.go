package diagnostic

import "fmt"

// Diagnostic codes emitted by resolution.
const (
	// CodeUnknownField marks a bare legacy field name absent from the
	// alias table; the record is skipped.
	CodeUnknownField = "unknown-field"
	// CodeEmptyValue marks a record whose value was nil or could not be
	// represented in the destination kind; the record is skipped.
	CodeEmptyValue = "empty-value"
)

// Severity is the level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Diagnostic is a single advisory message tied to one extraction record.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a stable identifier for this class of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Field is the extraction record's field name as received.
	Field string
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.Field != "" {
		return d.Field + ": " + msg
	}

	return msg
}

// Diagnostics collects everything resolution had to say about a batch.
type Diagnostics struct {
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, field string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Field:    field,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, field string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Field:    field,
	})
}

// HasWarnings reports whether any warnings were recorded.
func (d *Diagnostics) HasWarnings() bool {
	return len(d.Warnings) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}
