// Package object provides the nested request-object representation and
// dot-path access over it.
//
// Key capabilities:
//   - Get/Set/Has over dot-delimited paths ("business_context.budget_range")
//   - Non-mutating Set with copy-on-write of ancestor nodes
//   - Deep copy for baseline snapshots
//   - Leaf enumeration for display and diffing
package object
