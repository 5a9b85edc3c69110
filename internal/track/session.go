package track

import (
	"sort"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"rfq-engine/internal/object"
)

// Edit is one entry of the edited-field summary.
type Edit struct {
	// Field is the dot-path of the edited leaf.
	Field string `json:"field"`
	// Current is the tracked live value.
	Current any `json:"current_value"`
	// Original is the snapshot value, kept for display.
	Original any `json:"original_value"`
}

// Session tracks edits against one immutable baseline snapshot. The
// snapshot is deep-copied on creation and replaced only by Reset; callers
// never see partial snapshot updates.
type Session struct {
	// ID identifies the editing session in logs and summaries.
	ID string

	snapshot object.Object
	edited   map[string]Edit
}

// NewSession starts a tracking session over a deep copy of snapshot.
func NewSession(snapshot object.Object) *Session {
	return &Session{
		ID:       uuid.NewString(),
		snapshot: object.DeepCopy(snapshot),
		edited:   make(map[string]Edit),
	}
}

// Track records the live value at path. If it equals the snapshot value
// (structurally for slices and nested objects), the path leaves the edited
// set; otherwise the path enters or updates it. The most recent Track call
// for a path determines its state.
func (s *Session) Track(path string, newValue any) {
	original, _ := object.Get(s.snapshot, path)

	if cmp.Equal(original, newValue) {
		delete(s.edited, path)

		return
	}

	s.edited[path] = Edit{Field: path, Current: newValue, Original: original}
}

// Edited reports whether path is currently in the edited set.
func (s *Session) Edited(path string) bool {
	_, ok := s.edited[path]
	return ok
}

// Summary returns the edited set, sorted by field path. The contract is
// membership; the ordering only keeps output deterministic.
func (s *Session) Summary() []Edit {
	result := make([]Edit, 0, len(s.edited))
	for _, e := range s.edited {
		result = append(result, e)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Field < result[j].Field
	})

	return result
}

// Len returns the number of currently edited paths.
func (s *Session) Len() int {
	return len(s.edited)
}

// Clear empties the edited set without touching the baseline snapshot.
func (s *Session) Clear() {
	s.edited = make(map[string]Edit)
}

// Reset atomically replaces the baseline snapshot with a deep copy of
// snapshot and clears the edited set; the two are owned together.
func (s *Session) Reset(snapshot object.Object) {
	s.snapshot = object.DeepCopy(snapshot)
	s.edited = make(map[string]Edit)
}

// Baseline returns the value at path in the snapshot, if present.
func (s *Session) Baseline(path string) (any, bool) {
	return object.Get(s.snapshot, path)
}
