// Package match ranks member names by similarity to a requested name.
//
// Binding failures report the closest names the target class does have, so a
// stale or mistyped mapping entry is easy to spot.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Score: rates one candidate name, ignoring accessor prefixes
//   - Rank: scores and sorts candidate names
//   - Closest: returns the best few candidate names above a threshold
package match
