package qtext

import (
	"strconv"
	"strings"
)

// reconstruct boundary priority differs from parse: a colon introducing
// the list is preferred over the question mark ending the stem.
const reconstructBoundaries = ":?."

// ReconstructAttributes splices an edited attribute list into the original
// question text: everything up to and including the boundary character is
// kept, the comma-list that followed it is replaced, and trailing
// non-list text (the sentence terminator onward) is preserved. With no
// boundary the text is the list itself and is replaced wholesale. Empty
// attributes leave the text untouched.
func ReconstructAttributes(baseText string, attributes []string) string {
	if len(attributes) == 0 {
		return baseText
	}

	joined := strings.Join(attributes, ", ")

	boundary := -1

	for _, b := range reconstructBoundaries {
		i := strings.IndexRune(baseText, b)
		if i >= 0 {
			boundary = i

			break
		}
	}

	if boundary < 0 {
		return joined
	}

	head := baseText[:boundary+1]
	tail := baseText[boundary+1:]

	// The old list runs until the next sentence terminator, which is kept.
	suffix := ""
	if end := strings.IndexAny(tail, reconstructBoundaries); end >= 0 {
		suffix = tail[end:]
	}

	return head + " " + joined + suffix
}

// ReconstructTotalPoints substitutes the first "<integer> point(s)" match
// with the new total, leaving the rest of the text untouched. Text without
// a points phrase is returned unchanged.
func ReconstructTotalPoints(baseText string, totalPoints int) string {
	loc := totalPointsPattern.FindStringSubmatchIndex(baseText)
	if loc == nil {
		return baseText
	}

	// loc[2:4] is the integer capture.
	return baseText[:loc[2]] + strconv.Itoa(totalPoints) + baseText[loc[3]:]
}
