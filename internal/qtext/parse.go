package qtext

import (
	"regexp"
	"strconv"
	"strings"

	"rfq-engine/internal/common"
)

// DefaultTotalPoints is assumed when question text carries no explicit
// "N points" phrase.
const DefaultTotalPoints = 100

// boundary characters, in parse priority order.
const parseBoundaries = "?:."

// anchor phrases tried when the text has no boundary character.
var anchorPhrases = []string{
	"at the following",
	"priced at",
	"the following",
	"as follows",
}

// ParseAttributes extracts a comma-separated attribute list from question
// text. Strategies run in order until one yields items: text after the
// first boundary character (priority "?", ":", "."), text after an anchor
// phrase, the regex fallbacks, and finally the run back from the last
// comma. Returns nil when nothing list-like is found; never fails.
func ParseAttributes(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	items, found := afterBoundary(text)
	if !found {
		items = afterAnchor(text)
	}

	if common.IsEmpty(items) {
		items = bestFallback(text)
	}

	if common.IsEmpty(items) {
		items = lastCommaRun(text)
	}

	return items
}

// afterBoundary splits the text after its first boundary character. The
// second return reports whether any boundary character exists at all.
func afterBoundary(text string) ([]string, bool) {
	for _, b := range parseBoundaries {
		i := strings.IndexRune(text, b)
		if i < 0 {
			continue
		}

		return splitList(text[i+1:]), true
	}

	return nil, false
}

// afterAnchor splits the text after the first anchor phrase, matched
// case-insensitively.
func afterAnchor(text string) []string {
	lowered := strings.ToLower(text)

	for _, phrase := range anchorPhrases {
		i := strings.Index(lowered, phrase)
		if i < 0 {
			continue
		}

		return splitList(text[i+len(phrase):])
	}

	return nil
}

// Regex fallbacks, in declaration order. More specific patterns first:
// equal-length matches resolve to the earlier strategy.
var fallbackStrategies = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"currency-list", regexp.MustCompile(`\$\s*\d+(?:\.\d{1,2})?(?:\s*,\s*\$\s*\d+(?:\.\d{1,2})?)+`)},
	{"capitalized-list", regexp.MustCompile(`[A-Z][\w'&-]*(?:\s+[A-Z][\w'&-]*)*(?:\s*,\s*[A-Z][\w'&-]*(?:\s+[A-Z][\w'&-]*)*)+`)},
	{"generic-comma-list", regexp.MustCompile(`[^,\n.:?]+(?:\s*,\s*[^,\n.:?]+)+`)},
}

// bestFallback runs every fallback pattern and keeps the longest matched
// span; a strict comparison makes the earlier strategy win ties.
func bestFallback(text string) []string {
	var best string

	for _, s := range fallbackStrategies {
		m := s.pattern.FindString(text)
		if len(m) > len(best) {
			best = m
		}
	}

	if best == "" {
		return nil
	}

	return splitList(best)
}

// lastCommaRun bounds a list by walking backward from the last comma to
// the nearest boundary character, then splits from there to the end.
func lastCommaRun(text string) []string {
	last := strings.LastIndexByte(text, ',')
	if last < 0 {
		return nil
	}

	start := 0

	for i := last; i >= 0; i-- {
		if strings.ContainsRune(parseBoundaries, rune(text[i])) {
			start = i + 1

			break
		}
	}

	return splitList(text[start:])
}

// splitList turns a raw list span into items: trailing sentence period
// trimmed, comma-split, entries trimmed, empties dropped.
func splitList(span string) []string {
	span = strings.TrimSpace(span)
	span = strings.TrimSuffix(span, ".")

	var items []string

	for _, piece := range strings.Split(span, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}

		items = append(items, piece)
	}

	return items
}

var pricePattern = regexp.MustCompile(`\$?\d+(?:\.\d{1,2})?`)

// ParsePricePoints extracts every currency-like token (optional "$",
// digits, optional two-decimal fraction) as a float. Non-numeric parses
// are dropped.
func ParsePricePoints(text string) []float64 {
	var prices []float64

	for _, token := range pricePattern.FindAllString(text, -1) {
		token = strings.TrimPrefix(token, "$")

		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			continue
		}

		prices = append(prices, v)
	}

	return prices
}

var totalPointsPattern = regexp.MustCompile(`(\d+)\s*points?\b`)

// ParseTotalPoints extracts the first "<integer> point(s)" occurrence,
// defaulting to DefaultTotalPoints when absent.
func ParseTotalPoints(text string) int {
	m := totalPointsPattern.FindStringSubmatch(text)
	if m == nil {
		return DefaultTotalPoints
	}

	v, err := strconv.Atoi(m[1])
	if err != nil {
		return DefaultTotalPoints
	}

	return v
}

// Product-name patterns, in priority order.
var productPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bfor\s+([^?]+)\?`),
	regexp.MustCompile(`(?i)\bpay\s+for\s+([^?]+)\?`),
	regexp.MustCompile(`(?i)\bbuy\s+([^?]+)\?`),
	regexp.MustCompile(`(?i)\bpurchase\s+([^?]+)\?`),
}

// ParseProductName extracts the product a pricing question asks about
// ("would you pay for X?"). Returns "" when no pattern matches.
func ParseProductName(text string) string {
	for _, p := range productPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		name, ok := common.First(m[1:])
		if !ok {
			continue
		}

		return strings.TrimSpace(name)
	}

	return ""
}

// Question bundles everything the specialized editors read from one
// question's text. It lives only in editor state, never persisted.
type Question struct {
	Attributes  []string
	PricePoints []float64
	TotalPoints int
	ProductName string
}

// ParseQuestion runs every parser over the same text.
func ParseQuestion(text string) Question {
	return Question{
		Attributes:  ParseAttributes(text),
		PricePoints: ParsePricePoints(text),
		TotalPoints: ParseTotalPoints(text),
		ProductName: ParseProductName(text),
	}
}
