package qtext

import (
	"fmt"
	"strconv"
	"strings"

	"rfq-engine/internal/common"
	"rfq-engine/utils"
)

// Validation limits for editor input.
const (
	maxAttributeLen = 100
	maxPricePoint   = 10000.0
)

// Issue is one informational validation finding. Issues never block state
// updates; editors decide how to surface them.
type Issue struct {
	// Code is a stable identifier for the class of finding.
	Code string
	// Message is the human-readable description.
	Message string
}

// Issue codes.
const (
	IssueEmptyList    = "empty-list"
	IssueBlankEntry   = "blank-entry"
	IssueDuplicate    = "duplicate-entry"
	IssueEntryTooLong = "entry-too-long"
	IssueNotNumeric   = "not-numeric"
	IssueNegative     = "negative"
	IssueTooLarge     = "too-large"
)

// ValidateAttributes flags an empty list, blank entries, case-insensitive
// duplicates, and entries over the length limit.
func ValidateAttributes(attributes []string) []Issue {
	if common.IsEmpty(attributes) {
		return []Issue{{Code: IssueEmptyList, Message: "attribute list is empty"}}
	}

	var issues []Issue

	seen := make(map[string]int, len(attributes))

	for i, attr := range attributes {
		trimmed := strings.TrimSpace(attr)
		if trimmed == "" {
			issues = append(issues, Issue{
				Code:    IssueBlankEntry,
				Message: fmt.Sprintf("attribute %d is blank", i+1),
			})

			continue
		}

		key := strings.ToLower(trimmed)
		if first, dup := seen[key]; dup {
			issues = append(issues, Issue{
				Code:    IssueDuplicate,
				Message: fmt.Sprintf("attribute %d duplicates attribute %d (%q)", i+1, first+1, trimmed),
			})
		} else {
			seen[key] = i
		}

		if len(trimmed) > maxAttributeLen {
			issues = append(issues, Issue{
				Code:    IssueEntryTooLong,
				Message: fmt.Sprintf("attribute %d exceeds %d characters", i+1, maxAttributeLen),
			})
		}
	}

	return issues
}

// ValidatePricePoints flags non-numeric, negative, and out-of-range
// entries in raw editor input ("$30" and "30" are both numeric).
func ValidatePricePoints(entries []string) []Issue {
	if common.IsEmpty(entries) {
		return []Issue{{Code: IssueEmptyList, Message: "price point list is empty"}}
	}

	var issues []Issue

	for i, entry := range entries {
		cleaned := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(entry), "$"))

		v, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			issues = append(issues, Issue{
				Code:    IssueNotNumeric,
				Message: fmt.Sprintf("price point %d (%q) is not a number", i+1, entry),
			})

			continue
		}

		if !utils.IsNonNegative(v) {
			issues = append(issues, Issue{
				Code:    IssueNegative,
				Message: fmt.Sprintf("price point %d is negative", i+1),
			})

			continue
		}

		if !utils.IsInRange(0, v, maxPricePoint) {
			issues = append(issues, Issue{
				Code:    IssueTooLarge,
				Message: fmt.Sprintf("price point %d exceeds %v", i+1, maxPricePoint),
			})
		}
	}

	return issues
}
