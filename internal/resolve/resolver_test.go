package resolve

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rfq-engine/internal/diagnostic"
	"rfq-engine/internal/object"
)

func TestResolve_BudgetRangeVocabulary(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"under 10k", "under_10k"},
		{"50-100k", "50k_100k"},
		{"over 100k", "100k_plus"},
		{"unclear", "10k_50k"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			result, _ := Resolve([]Mapping{{Field: "budget_range", Value: tt.raw}})

			v, ok := object.Get(result, "business_context.budget_range")
			require.True(t, ok)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestResolve_TimelineVocabulary(t *testing.T) {
	for raw, expected := range map[string]string{
		"urgent deadline":   "rush",
		"rush project":      "rush",
		"flexible timeline": "flexible",
		"standard delivery": "standard",
	} {
		result, _ := Resolve([]Mapping{{Field: "timeline_constraints", Value: raw}})

		v, _ := object.Get(result, "business_context.timeline_constraints")
		assert.Equal(t, expected, v, "raw=%q", raw)
	}
}

func TestResolve_DotPathAndLegacyNameAgree(t *testing.T) {
	byPath, _ := Resolve([]Mapping{{Field: "business_context.budget_range", Value: "under 10k"}})
	byName, _ := Resolve([]Mapping{{Field: "budget_range", Value: "under 10k"}})

	assert.Empty(t, cmp.Diff(byPath, byName))
}

func TestResolve_ListCoercionAgrees(t *testing.T) {
	fromArray, _ := Resolve([]Mapping{{Field: "key_research_questions", Value: []string{"Q1", "Q2"}}})
	fromText, _ := Resolve([]Mapping{{Field: "key_research_questions", Value: "Q1\nQ2"}})

	expected := []string{"Q1", "Q2"}

	v, _ := object.Get(fromArray, "research_objectives.key_research_questions")
	assert.Equal(t, expected, v)

	v, _ = object.Get(fromText, "research_objectives.key_research_questions")
	assert.Equal(t, expected, v)
}

func TestResolve_BooleanDestination(t *testing.T) {
	result, _ := Resolve([]Mapping{
		{Field: "requires_screener", Value: "yes"},
		{Field: "survey_logic.requires_shuffling", Value: false},
	})

	v, _ := object.Get(result, "survey_logic.requires_screener")
	assert.Equal(t, true, v)

	v, _ = object.Get(result, "survey_logic.requires_shuffling")
	assert.Equal(t, false, v)
}

func TestResolve_EmptyBatch(t *testing.T) {
	result, diags := Resolve(nil)

	assert.NotNil(t, result)
	assert.Empty(t, result)
	assert.False(t, diags.HasWarnings())
}

func TestResolve_UnknownFieldSkippedWithWarning(t *testing.T) {
	result, diags := Resolve([]Mapping{
		{Field: "unknown_field", Value: "x", Source: "llm"},
		{Field: "title", Value: "Kept"},
	})

	assert.NotNil(t, result)

	v, ok := object.Get(result, "title")
	require.True(t, ok)
	assert.Equal(t, "Kept", v)

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, diagnostic.CodeUnknownField, diags.Warnings[0].Code)
	assert.Equal(t, "unknown_field", diags.Warnings[0].Field)
}

func TestResolve_NilValueSkipped(t *testing.T) {
	result, diags := Resolve([]Mapping{{Field: "title", Value: nil}})

	assert.False(t, object.Has(result, "title"))
	assert.Len(t, diags.Infos, 1)
	assert.Equal(t, diagnostic.CodeEmptyValue, diags.Infos[0].Code)
}

func TestResolve_LastWriteWins(t *testing.T) {
	result, _ := Resolve([]Mapping{
		{Field: "title", Value: "First"},
		{Field: "title", Value: "Second"},
	})

	v, _ := object.Get(result, "title")
	assert.Equal(t, "Second", v)
}

func TestResolve_SiblingLeavesBothSurvive(t *testing.T) {
	result, _ := Resolve([]Mapping{
		{Field: "business_context.business_problem", Value: "Declining share"},
		{Field: "business_context.budget_range", Value: "over 100k"},
	})

	v, ok := object.Get(result, "business_context.business_problem")
	require.True(t, ok)
	assert.Equal(t, "Declining share", v)

	v, ok = object.Get(result, "business_context.budget_range")
	require.True(t, ok)
	assert.Equal(t, "100k_plus", v)
}

func TestResolve_Deterministic(t *testing.T) {
	mappings := []Mapping{
		{Field: "title", Value: "Study"},
		{Field: "budget_range", Value: "10-50k"},
		{Field: "key_research_questions", Value: "A\nB\nC"},
		{Field: "requires_screener", Value: "true"},
	}

	first, _ := Resolve(mappings)
	second, _ := Resolve(mappings)

	assert.Empty(t, cmp.Diff(first, second))
}

func TestResolve_UnknownDotPathKept(t *testing.T) {
	result, diags := Resolve([]Mapping{{Field: "business_context.novel_leaf", Value: "v"}})

	v, ok := object.Get(result, "business_context.novel_leaf")
	require.True(t, ok)
	assert.Equal(t, "v", v)
	assert.False(t, diags.HasWarnings())
}

func TestNewResolver_NilArguments(t *testing.T) {
	r := NewResolver(nil, nil)
	result, _ := r.Resolve([]Mapping{{Field: "title", Value: "T"}})

	assert.True(t, object.Has(result, "title"))
}

func TestResolver_WithLogger(t *testing.T) {
	r := NewResolver(nil, zap.NewNop())
	_, diags := r.Resolve([]Mapping{{Field: "bogus", Value: "x"}})

	assert.True(t, diags.HasWarnings())
}
