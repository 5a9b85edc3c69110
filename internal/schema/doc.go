// Package schema defines the destination-field table for the research
// request object: which dot-paths exist, what value kind each leaf takes,
// and which categorical vocabulary (if any) applies.
//
// Key capabilities:
//   - Lookup by verbatim dot-path or bare legacy field name
//   - Legacy-name alias table, extensible from a YAML override file
//   - Categorical fields bound to their vocab normalizer
//
// The alias table exists because upstream extractors emit a flat legacy
// vocabulary ("company_product_background") while the request object is
// nested; YAML overrides let deployments track extractor vocabulary drift
// without a rebuild.
package schema
