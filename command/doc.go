// Package command resolves free-text chat lines to entries of a fixed command
// catalog.
//
// A line is split into whitespace separated tokens by Tokenize. The first
// token is the candidate command name; it is lower-cased and compared against
// every catalog name with a capped Levenshtein distance. The outcome is one of:
//   - Matched: a catalog name within Thresholds.Match edits (default 1).
//   - Suggested: the closest name within (Match, Suggest) edits, surfaced as
//     "did you mean" text by the embedding application.
//   - NoMatch: nothing close, an empty line, or a line with non-ASCII bytes.
//
// Two pieces of per-catalog configuration adjust the suggestion slot: ignored
// suggestions are dropped instead of surfaced, and forced aliases promote a
// suggestion to a match against their target entry.
//
// Everything in this package is pure and safe for concurrent use; a Catalog
// is immutable once built.
package command
