package qtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issueCodes(issues []Issue) []string {
	codes := make([]string, 0, len(issues))
	for _, i := range issues {
		codes = append(codes, i.Code)
	}

	return codes
}

func TestValidateAttributes_Empty(t *testing.T) {
	issues := ValidateAttributes(nil)
	require.NotEmpty(t, issues)
	assert.Equal(t, IssueEmptyList, issues[0].Code)
}

func TestValidateAttributes_Clean(t *testing.T) {
	assert.Empty(t, ValidateAttributes([]string{"Taste", "Texture", "Value"}))
}

func TestValidateAttributes_CaseInsensitiveDuplicate(t *testing.T) {
	issues := ValidateAttributes([]string{"A", "a"})
	assert.Contains(t, issueCodes(issues), IssueDuplicate)
}

func TestValidateAttributes_BlankEntry(t *testing.T) {
	issues := ValidateAttributes([]string{"Taste", "  "})
	assert.Contains(t, issueCodes(issues), IssueBlankEntry)
}

func TestValidateAttributes_TooLong(t *testing.T) {
	issues := ValidateAttributes([]string{strings.Repeat("x", 101)})
	assert.Contains(t, issueCodes(issues), IssueEntryTooLong)

	assert.Empty(t, ValidateAttributes([]string{strings.Repeat("x", 100)}))
}

func TestValidatePricePoints_Empty(t *testing.T) {
	issues := ValidatePricePoints(nil)
	require.NotEmpty(t, issues)
	assert.Equal(t, IssueEmptyList, issues[0].Code)
}

func TestValidatePricePoints_Clean(t *testing.T) {
	assert.Empty(t, ValidatePricePoints([]string{"$30", "35", " $4.99 ", "10000"}))
}

func TestValidatePricePoints_Findings(t *testing.T) {
	issues := ValidatePricePoints([]string{"abc", "-5", "10001"})

	codes := issueCodes(issues)
	assert.Contains(t, codes, IssueNotNumeric)
	assert.Contains(t, codes, IssueNegative)
	assert.Contains(t, codes, IssueTooLarge)
}
