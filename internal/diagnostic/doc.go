// Package diagnostic provides structured warnings and notes emitted while
// resolving extraction records into a request object.
//
// Key capabilities:
//   - Unknown legacy field-name warnings
//   - Skipped-record notes (empty or unrepresentable values)
//   - Stable codes for downstream filtering
//
// Resolution has no fatal conditions, so there is no error severity: every
// diagnostic is advisory and the batch always completes.
package diagnostic
