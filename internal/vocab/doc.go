// Package vocab normalizes free-text categorical answers into the closed
// vocabularies the request schema's select fields require.
//
// Key capabilities:
//   - One total normalizer per categorical field (never fails, documented default)
//   - Ordered case-insensitive substring rules, first match wins
//   - Declaration order breaks ties (more specific rules declared first)
//   - Vocabulary registry for inspection and export
//
// Extraction sources (LLM summaries, document text) phrase answers freely;
// ordered substring matching is deliberately simple and auditable over
// statistical classification.
package vocab
