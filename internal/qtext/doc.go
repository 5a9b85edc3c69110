// Package qtext parses semi-structured lists out of free-form survey
// question text and writes edited lists back into it.
//
// Key capabilities:
//   - Attribute lists via an ordered pipeline of named strategies
//     (boundary character, anchor phrase, regex fallbacks, last-comma)
//   - Currency-prefixed price series and "N points" totals
//   - Reconstruction that preserves the original prefix and suffix
//   - Informational validation helpers that never block edits
//
// Everything here is heuristic and total: unparsable text yields an empty
// result, never an error. Re-parsing reconstructed text recovers the
// edited list exactly; incidental surrounding prose is best-effort.
package qtext
