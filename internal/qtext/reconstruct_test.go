package qtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconstructAttributes_RoundTrip(t *testing.T) {
	original := "How much would you pay for: $30, $35, $40."
	edited := []string{"$30", "$35", "$45", "$50"}

	rebuilt := ReconstructAttributes(original, edited)
	assert.Equal(t, "How much would you pay for: $30, $35, $45, $50.", rebuilt)

	// Re-parsing recovers the edited list exactly.
	assert.Equal(t, edited, ParseAttributes(rebuilt))
}

func TestReconstructAttributes_QuestionMarkBoundary(t *testing.T) {
	original := "Which features matter? Speed, Price"
	edited := []string{"Speed", "Price", "Design"}

	rebuilt := ReconstructAttributes(original, edited)
	assert.Equal(t, "Which features matter? Speed, Price, Design", rebuilt)
	assert.Equal(t, edited, ParseAttributes(rebuilt))
}

func TestReconstructAttributes_ColonPreferredOverQuestionMark(t *testing.T) {
	original := "What matters most? Rank these: A, B"
	rebuilt := ReconstructAttributes(original, []string{"X", "Y"})

	// The colon introducing the list wins even though "?" comes first.
	assert.Equal(t, "What matters most? Rank these: X, Y", rebuilt)
}

func TestReconstructAttributes_TrailingProseKept(t *testing.T) {
	original := "Rank: A, B, C. Thanks for participating."
	rebuilt := ReconstructAttributes(original, []string{"X", "Y"})

	assert.Equal(t, "Rank: X, Y. Thanks for participating.", rebuilt)
}

func TestReconstructAttributes_NoBoundary(t *testing.T) {
	rebuilt := ReconstructAttributes("A, B, C", []string{"X", "Y"})
	assert.Equal(t, "X, Y", rebuilt)
	assert.Equal(t, []string{"X", "Y"}, ParseAttributes(rebuilt))
}

func TestReconstructAttributes_EmptyListLeavesTextAlone(t *testing.T) {
	original := "Rank these: A, B"
	assert.Equal(t, original, ReconstructAttributes(original, nil))
}

func TestReconstructTotalPoints(t *testing.T) {
	rebuilt := ReconstructTotalPoints("Allocate 100 points across the brands below", 150)
	assert.Equal(t, "Allocate 150 points across the brands below", rebuilt)
	assert.Equal(t, 150, ParseTotalPoints(rebuilt))
}

func TestReconstructTotalPoints_FirstMatchOnly(t *testing.T) {
	rebuilt := ReconstructTotalPoints("Split 50 points, then 100 points", 75)
	assert.Equal(t, "Split 75 points, then 100 points", rebuilt)
}

func TestReconstructTotalPoints_NoMatch(t *testing.T) {
	original := "Rank the brands"
	assert.Equal(t, original, ReconstructTotalPoints(original, 150))
}
