// Package resolve turns extraction records into a partially populated
// request object.
//
// Key capabilities:
//   - Dot-path and legacy bare-name destinations via the schema table
//   - Coercion to the destination kind, categorical normalization on top
//   - Last-write-wins per leaf, in record order
//   - Skip-and-warn on unknown names; a batch never fails
//
// Records come from noisy upstream extractors (document parsing, LLM
// summaries); resolution is best-effort by design and the merged result is
// always subject to human review downstream.
package resolve
