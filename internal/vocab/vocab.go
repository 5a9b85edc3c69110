package vocab

import (
	"regexp"
	"strconv"
	"strings"
)

// Rule maps any of its trigger substrings to one canonical tag.
type Rule struct {
	// Match lists trigger substrings, compared case-insensitively.
	Match []string `yaml:"match"`
	// Tag is the canonical vocabulary tag emitted on a match.
	Tag string `yaml:"tag"`
}

// Vocabulary is the ordered rule set for one categorical field.
type Vocabulary struct {
	// Field is the leaf name of the categorical destination field.
	Field string `yaml:"field"`
	// Rules are checked in declaration order; the first match wins.
	Rules []Rule `yaml:"rules"`
	// Default is the tag returned when no rule matches.
	Default string `yaml:"default"`
}

// Normalize maps raw free text to a canonical tag. It is total: unmatched
// input returns the vocabulary's default.
func (v Vocabulary) Normalize(raw string) string {
	lowered := strings.ToLower(raw)

	for _, rule := range v.Rules {
		for _, m := range rule.Match {
			if strings.Contains(lowered, m) {
				return rule.Tag
			}
		}
	}

	return v.Default
}

var budgetRange = Vocabulary{
	Field: "budget_range",
	Rules: []Rule{
		{Match: []string{"under 10k", "less than 10k"}, Tag: "under_10k"},
		{Match: []string{"10k to 50k", "10-50k"}, Tag: "10k_50k"},
		{Match: []string{"50k to 100k", "50-100k"}, Tag: "50k_100k"},
		{Match: []string{"over 100k", "more than 100k"}, Tag: "100k_plus"},
	},
	Default: "10k_50k",
}

var timelineConstraints = Vocabulary{
	Field: "timeline_constraints",
	Rules: []Rule{
		{Match: []string{"urgent", "rush"}, Tag: "rush"},
		{Match: []string{"flexible"}, Tag: "flexible"},
		{Match: []string{"standard"}, Tag: "standard"},
	},
	Default: "standard",
}

var measurementApproach = Vocabulary{
	Field: "measurement_approach",
	Rules: []Rule{
		{Match: []string{"quantitative"}, Tag: "quantitative"},
		{Match: []string{"qualitative"}, Tag: "qualitative"},
		{Match: []string{"mixed"}, Tag: "mixed_methods"},
	},
	Default: "mixed_methods",
}

var complexityLevel = Vocabulary{
	Field: "complexity_level",
	Rules: []Rule{
		{Match: []string{"simple", "basic"}, Tag: "simple"},
		{Match: []string{"complex", "advanced", "sophisticated"}, Tag: "advanced"},
		{Match: []string{"standard"}, Tag: "standard"},
	},
	Default: "standard",
}

var completionTimeTarget = Vocabulary{
	Field: "completion_time_target",
	Rules: []Rule{
		{Match: []string{"5-10"}, Tag: "5_10_min"},
		{Match: []string{"10-15"}, Tag: "10_15_min"},
		{Match: []string{"15-25"}, Tag: "15_25_min"},
		{Match: []string{"25+"}, Tag: "25_plus_min"},
	},
	Default: "15_25_min",
}

var deviceCompatibility = Vocabulary{
	Field: "device_compatibility",
	Rules: []Rule{
		{Match: []string{"mobile"}, Tag: "mobile_first"},
		{Match: []string{"desktop"}, Tag: "desktop_first"},
		{Match: []string{"responsive"}, Tag: "both"},
	},
	Default: "both",
}

var accessibilityRequirements = Vocabulary{
	Field: "accessibility_requirements",
	Rules: []Rule{
		{Match: []string{"enhanced"}, Tag: "enhanced"},
		{Match: []string{"full", "ada"}, Tag: "full_compliance"},
		{Match: []string{"standard"}, Tag: "standard"},
	},
	Default: "standard",
}

var dataQualityRequirements = Vocabulary{
	Field: "data_quality_requirements",
	Rules: []Rule{
		{Match: []string{"premium"}, Tag: "premium"},
		{Match: []string{"basic"}, Tag: "basic"},
		{Match: []string{"standard"}, Tag: "standard"},
	},
	Default: "standard",
}

// NormalizeBudgetRange maps free text to a budget_range tag.
func NormalizeBudgetRange(raw string) string {
	return budgetRange.Normalize(raw)
}

// NormalizeTimelineConstraints maps free text to a timeline_constraints tag.
func NormalizeTimelineConstraints(raw string) string {
	return timelineConstraints.Normalize(raw)
}

// NormalizeMeasurementApproach maps free text to a measurement_approach tag.
func NormalizeMeasurementApproach(raw string) string {
	return measurementApproach.Normalize(raw)
}

// NormalizeComplexityLevel maps free text to a complexity_level tag.
func NormalizeComplexityLevel(raw string) string {
	return complexityLevel.Normalize(raw)
}

var durationPattern = regexp.MustCompile(`\d+`)

// NormalizeCompletionTime maps free text to a completion_time_target tag.
// Beyond the substring rules, any explicit duration above 25 minutes
// resolves to 25_plus_min ("a 30 minute survey").
func NormalizeCompletionTime(raw string) string {
	lowered := strings.ToLower(raw)

	for _, rule := range completionTimeTarget.Rules {
		for _, m := range rule.Match {
			if strings.Contains(lowered, m) {
				return rule.Tag
			}
		}
	}

	if digits := durationPattern.FindString(lowered); digits != "" {
		if minutes, err := strconv.Atoi(digits); err == nil && minutes > 25 {
			return "25_plus_min"
		}
	}

	return completionTimeTarget.Default
}

// NormalizeDeviceCompatibility maps free text to a device_compatibility tag.
func NormalizeDeviceCompatibility(raw string) string {
	return deviceCompatibility.Normalize(raw)
}

// NormalizeAccessibility maps free text to an accessibility_requirements tag.
func NormalizeAccessibility(raw string) string {
	return accessibilityRequirements.Normalize(raw)
}

// NormalizeDataQuality maps free text to a data_quality_requirements tag.
func NormalizeDataQuality(raw string) string {
	return dataQualityRequirements.Normalize(raw)
}

// Vocabularies returns every registered vocabulary in a stable order.
func Vocabularies() []Vocabulary {
	return []Vocabulary{
		budgetRange,
		timelineConstraints,
		measurementApproach,
		complexityLevel,
		completionTimeTarget,
		deviceCompatibility,
		accessibilityRequirements,
		dataQualityRequirements,
	}
}

// ForField returns the vocabulary for a categorical leaf field name.
func ForField(field string) (Vocabulary, bool) {
	for _, v := range Vocabularies() {
		if v.Field == field {
			return v, true
		}
	}

	return Vocabulary{}, false
}
