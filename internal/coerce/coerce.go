// Package coerce converts loosely typed extraction payloads into the three
// destination shapes the request schema knows: scalar string, list of
// strings, and boolean. It is the single boundary where raw "any" values
// become typed; nothing downstream branches on raw payload types.
package coerce

import (
	"fmt"
	"strings"
)

// Value is the tagged union produced by Coerce. Exactly one of Str, List,
// or Bool is meaningful, selected by Kind.
type Value struct {
	Kind Kind
	Str  string
	List []string
	Bool bool
}

// Interface returns the payload as a plain value suitable for writing into
// a request object.
func (v Value) Interface() any {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindStringList:
		return v.List
	case KindBool:
		return v.Bool
	default:
		return nil
	}
}

// affirmative is the closed set of strings coerced to boolean true.
// Deliberately narrow: "1" and "y" are not affirmative.
var affirmative = map[string]bool{
	"true": true,
	"yes":  true,
}

// Coerce converts a raw extracted value to the target kind. The second
// return is false when the value cannot be represented (nil raw values,
// unsupported combinations); callers omit the field in that case. Coerce
// never panics.
func Coerce(raw any, target Kind) (Value, bool) {
	if raw == nil {
		return Value{}, false
	}

	switch target {
	case KindString:
		return coerceString(raw)
	case KindStringList:
		return coerceStringList(raw)
	case KindBool:
		return coerceBool(raw)
	default:
		return Value{}, false
	}
}

func coerceString(raw any) (Value, bool) {
	switch typed := raw.(type) {
	case string:
		return Value{Kind: KindString, Str: typed}, true
	case []string:
		return Value{Kind: KindString, Str: strings.Join(typed, ", ")}, true
	case []any:
		parts := make([]string, 0, len(typed))
		for _, elem := range typed {
			parts = append(parts, fmt.Sprint(elem))
		}

		return Value{Kind: KindString, Str: strings.Join(parts, ", ")}, true
	default:
		return Value{Kind: KindString, Str: fmt.Sprint(typed)}, true
	}
}

func coerceStringList(raw any) (Value, bool) {
	switch typed := raw.(type) {
	case []string:
		return Value{Kind: KindStringList, List: cleanList(typed)}, true
	case []any:
		parts := make([]string, 0, len(typed))
		for _, elem := range typed {
			parts = append(parts, fmt.Sprint(elem))
		}

		return Value{Kind: KindStringList, List: cleanList(parts)}, true
	case string:
		return Value{Kind: KindStringList, List: splitList(typed)}, true
	default:
		return Value{}, false
	}
}

func coerceBool(raw any) (Value, bool) {
	switch typed := raw.(type) {
	case bool:
		return Value{Kind: KindBool, Bool: typed}, true
	case string:
		return Value{Kind: KindBool, Bool: affirmative[strings.ToLower(strings.TrimSpace(typed))]}, true
	default:
		return Value{}, false
	}
}

// splitList splits free text into list entries: on newlines when any are
// present, otherwise on commas.
func splitList(s string) []string {
	sep := ","
	if strings.Contains(s, "\n") {
		sep = "\n"
	}

	return cleanList(strings.Split(s, sep))
}

// cleanList trims every entry and drops the empty ones.
func cleanList(entries []string) []string {
	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" {
			continue
		}

		result = append(result, trimmed)
	}

	return result
}
