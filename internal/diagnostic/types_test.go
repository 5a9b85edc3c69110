package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{
		Severity: SeverityWarning,
		Code:     CodeUnknownField,
		Message:  "no destination for field",
		Field:    "mystery_field",
	}

	assert.Equal(t, "mystery_field: [unknown-field] no destination for field", d.String())
}

func TestDiagnostic_String_NoFieldNoCode(t *testing.T) {
	d := Diagnostic{Message: "plain note"}
	assert.Equal(t, "plain note", d.String())
}

func TestDiagnostics_AddAndMerge(t *testing.T) {
	var a Diagnostics
	a.AddWarning(CodeUnknownField, "skip", "x")
	a.AddInfo(CodeEmptyValue, "nil value", "y")

	var b Diagnostics
	b.AddWarning(CodeUnknownField, "skip too", "z")

	a.Merge(b)

	assert.Len(t, a.Warnings, 2)
	assert.Len(t, a.Infos, 1)
	assert.True(t, a.HasWarnings())
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "unknown", Severity(9).String())
}
