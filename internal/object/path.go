package object

import "strings"

// Object is an arbitrarily deep mapping of string keys to scalars, string
// slices, booleans, or nested Objects. It is the in-memory shape of a
// partially populated research request.
type Object map[string]any

// SplitPath splits a dot-delimited path into its segments.
// Returns nil for an empty path or a path with an empty segment.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}

	segments := strings.Split(path, ".")
	for _, seg := range segments {
		if seg == "" {
			return nil
		}
	}

	return segments
}

// Get returns the value at path and true, or nil and false if any segment
// along the path does not resolve. It never errors on missing paths.
func Get(obj Object, path string) (any, bool) {
	segments := SplitPath(path)
	if segments == nil {
		return nil, false
	}

	current := obj
	for i, seg := range segments {
		value, ok := current[seg]
		if !ok {
			return nil, false
		}

		if i == len(segments)-1 {
			return value, true
		}

		next, ok := toObject(value)
		if !ok {
			return nil, false
		}

		current = next
	}

	return nil, false
}

// Has reports whether path resolves to a value in obj.
func Has(obj Object, path string) bool {
	_, ok := Get(obj, path)
	return ok
}

// Set returns a new Object with value written at path. The receiver is not
// mutated: every node along the path is shallow-copied, siblings are shared
// with the original. Intermediate objects that do not exist are created.
// An invalid path returns obj unchanged.
func Set(obj Object, path string, value any) Object {
	segments := SplitPath(path)
	if segments == nil {
		return obj
	}

	return setSegments(obj, segments, value)
}

func setSegments(obj Object, segments []string, value any) Object {
	result := make(Object, len(obj)+1)
	for k, v := range obj {
		result[k] = v
	}

	head := segments[0]
	if len(segments) == 1 {
		result[head] = value
		return result
	}

	child, ok := toObject(result[head])
	if !ok {
		// Non-object values along the path are displaced by a fresh node.
		child = Object{}
	}

	result[head] = setSegments(child, segments[1:], value)

	return result
}

// DeepCopy returns a fully independent copy of obj. Nested Objects and
// string slices are copied; scalar leaves are shared by value.
func DeepCopy(obj Object) Object {
	if obj == nil {
		return Object{}
	}

	result := make(Object, len(obj))
	for k, v := range obj {
		result[k] = deepCopyValue(v)
	}

	return result
}

func deepCopyValue(v any) any {
	switch typed := v.(type) {
	case Object:
		return DeepCopy(typed)
	case map[string]any:
		return DeepCopy(Object(typed))
	case []string:
		out := make([]string, len(typed))
		copy(out, typed)

		return out
	case []any:
		out := make([]any, len(typed))
		for i, elem := range typed {
			out[i] = deepCopyValue(elem)
		}

		return out
	default:
		return v
	}
}

// Leaves returns every leaf path in obj mapped to its value. Nested Objects
// are descended; everything else (scalars, slices) is a leaf.
func Leaves(obj Object) map[string]any {
	result := make(map[string]any)
	collectLeaves(obj, "", result)

	return result
}

func collectLeaves(obj Object, prefix string, out map[string]any) {
	for k, v := range obj {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}

		if child, ok := toObject(v); ok {
			collectLeaves(child, path, out)

			continue
		}

		out[path] = v
	}
}

// toObject unwraps a value into an Object if it is one, handling both the
// named type and raw map[string]any produced by JSON decoding.
func toObject(v any) (Object, bool) {
	switch typed := v.(type) {
	case Object:
		return typed, true
	case map[string]any:
		return Object(typed), true
	default:
		return nil, false
	}
}
