// Package track maintains edit provenance for one form-editing session:
// which leaf paths of the request object currently differ from the
// baseline snapshot taken at load or reset.
//
// Membership in the edited set is exactly "current value differs from the
// snapshot value"; reverting a field to its original value un-tracks it.
package track
