package schema

import (
	"strings"

	"rfq-engine/internal/coerce"
	"rfq-engine/internal/vocab"
)

// FieldSpec describes one destination leaf of the request object.
type FieldSpec struct {
	// Path is the canonical dot-path of the leaf.
	Path string
	// Kind is the value kind the leaf stores.
	Kind coerce.Kind
	// Normalize maps coerced text into the field's closed vocabulary.
	// Nil for non-categorical fields.
	Normalize func(string) string
}

// IsCategorical reports whether the field carries a closed vocabulary.
func (f FieldSpec) IsCategorical() bool {
	return f.Normalize != nil
}

// fields is the authoritative destination table. Leaf names double as the
// legacy bare vocabulary, so they are unique across sections.
var fields = []FieldSpec{
	{Path: "title", Kind: coerce.KindString},
	{Path: "description", Kind: coerce.KindString},

	{Path: "business_context.company_product_background", Kind: coerce.KindString},
	{Path: "business_context.business_problem", Kind: coerce.KindString},
	{Path: "business_context.business_objective", Kind: coerce.KindString},
	{Path: "business_context.stakeholder_requirements", Kind: coerce.KindString},
	{Path: "business_context.decision_criteria", Kind: coerce.KindString},
	{Path: "business_context.budget_range", Kind: coerce.KindString, Normalize: vocab.NormalizeBudgetRange},
	{Path: "business_context.timeline_constraints", Kind: coerce.KindString, Normalize: vocab.NormalizeTimelineConstraints},
	{Path: "business_context.industry_context", Kind: coerce.KindString},

	{Path: "research_objectives.research_audience", Kind: coerce.KindString},
	{Path: "research_objectives.success_criteria", Kind: coerce.KindString},
	{Path: "research_objectives.key_research_questions", Kind: coerce.KindStringList},
	{Path: "research_objectives.success_metrics", Kind: coerce.KindString},
	{Path: "research_objectives.validation_requirements", Kind: coerce.KindString},
	{Path: "research_objectives.measurement_approach", Kind: coerce.KindString, Normalize: vocab.NormalizeMeasurementApproach},

	{Path: "methodology.primary_method", Kind: coerce.KindString},
	{Path: "methodology.stimuli_details", Kind: coerce.KindString},
	{Path: "methodology.methodology_requirements", Kind: coerce.KindString},
	{Path: "methodology.complexity_level", Kind: coerce.KindString, Normalize: vocab.NormalizeComplexityLevel},
	{Path: "methodology.required_methodologies", Kind: coerce.KindStringList},
	{Path: "methodology.sample_size_target", Kind: coerce.KindString},

	{Path: "survey_requirements.sample_plan", Kind: coerce.KindString},
	{Path: "survey_requirements.target_audiences", Kind: coerce.KindStringList},
	{Path: "survey_requirements.screener_requirements", Kind: coerce.KindString},
	{Path: "survey_requirements.demographics", Kind: coerce.KindStringList},
	{Path: "survey_requirements.completion_time_target", Kind: coerce.KindString, Normalize: vocab.NormalizeCompletionTime},
	{Path: "survey_requirements.device_compatibility", Kind: coerce.KindString, Normalize: vocab.NormalizeDeviceCompatibility},
	{Path: "survey_requirements.accessibility_requirements", Kind: coerce.KindString, Normalize: vocab.NormalizeAccessibility},
	{Path: "survey_requirements.data_quality_requirements", Kind: coerce.KindString, Normalize: vocab.NormalizeDataQuality},

	{Path: "survey_structure.qnr_sections", Kind: coerce.KindStringList},
	{Path: "survey_structure.question_count", Kind: coerce.KindString},
	{Path: "survey_structure.must_have_questions", Kind: coerce.KindStringList},
	{Path: "survey_structure.screener_questions", Kind: coerce.KindStringList},

	{Path: "survey_logic.requires_piping_personalization", Kind: coerce.KindBool},
	{Path: "survey_logic.requires_sampling_integration", Kind: coerce.KindBool},
	{Path: "survey_logic.requires_screener", Kind: coerce.KindBool},
	{Path: "survey_logic.requires_shuffling", Kind: coerce.KindBool},
	{Path: "survey_logic.custom_logic_requirements", Kind: coerce.KindString},

	{Path: "brand_usage_requirements.brand_recall_required", Kind: coerce.KindBool},
	{Path: "brand_usage_requirements.brand_awareness_funnel", Kind: coerce.KindBool},
	{Path: "brand_usage_requirements.brand_product_satisfaction", Kind: coerce.KindBool},
	{Path: "brand_usage_requirements.usage_frequency_tracking", Kind: coerce.KindBool},

	{Path: "advanced_classification.industry_classification", Kind: coerce.KindString},
	{Path: "advanced_classification.respondent_classification", Kind: coerce.KindString},
	{Path: "advanced_classification.methodology_tags", Kind: coerce.KindStringList},
	{Path: "advanced_classification.compliance_requirements", Kind: coerce.KindStringList},

	{Path: "rules_and_definitions", Kind: coerce.KindString},
}

// extraAliases maps legacy spellings that differ from the canonical leaf
// name. Leaf-name aliases are derived from the field table itself.
var extraAliases = map[string]string{
	"company_background": "business_context.company_product_background",
	"product_background": "business_context.company_product_background",
	"business_goal":      "business_context.business_objective",
	"research_questions": "research_objectives.key_research_questions",
	"target_audience":    "survey_requirements.target_audiences",
	"estimated_time":     "survey_requirements.completion_time_target",
	"sample_size":        "methodology.sample_size_target",
}

// Table resolves extractor field names to destination specs. A Table is an
// explicit, owned context object: callers that need deployment-specific
// aliases extend their own instance rather than mutating package state.
type Table struct {
	byPath  map[string]FieldSpec
	aliases map[string]string
}

// Default returns a Table with the built-in field table and aliases.
func Default() *Table {
	t := &Table{
		byPath:  make(map[string]FieldSpec, len(fields)),
		aliases: make(map[string]string, len(fields)+len(extraAliases)),
	}

	for _, f := range fields {
		t.byPath[f.Path] = f

		// The bare leaf name is the legacy vocabulary entry.
		leaf := f.Path
		if i := strings.LastIndex(f.Path, "."); i >= 0 {
			leaf = f.Path[i+1:]
		}

		t.aliases[leaf] = f.Path
	}

	for name, path := range extraAliases {
		t.aliases[name] = path
	}

	return t
}

// Lookup resolves an extractor field name to a FieldSpec. Names containing
// a dot are treated as verbatim destination paths; unknown dot-paths
// resolve to a plain string leaf so novel extractor output is never lost.
// Bare names go through the alias table; unknown bare names report false.
func (t *Table) Lookup(field string) (FieldSpec, bool) {
	if strings.Contains(field, ".") {
		if spec, ok := t.byPath[field]; ok {
			return spec, true
		}

		return FieldSpec{Path: field, Kind: coerce.KindString}, true
	}

	path, ok := t.aliases[field]
	if !ok {
		return FieldSpec{}, false
	}

	return t.byPath[path], true
}

// AddAliases merges additional legacy-name aliases into the table.
// Aliases pointing at paths outside the field table are ignored.
func (t *Table) AddAliases(aliases map[string]string) {
	for name, path := range aliases {
		if _, ok := t.byPath[path]; !ok {
			continue
		}

		t.aliases[name] = path
	}
}

// Fields returns every destination leaf in declaration order.
func Fields() []FieldSpec {
	out := make([]FieldSpec, len(fields))
	copy(out, fields)

	return out
}

// Sections returns the fixed top-level sections of the request object.
func Sections() []string {
	return []string{
		"title",
		"description",
		"business_context",
		"research_objectives",
		"methodology",
		"survey_requirements",
		"survey_structure",
		"survey_logic",
		"brand_usage_requirements",
		"advanced_classification",
		"rules_and_definitions",
	}
}
