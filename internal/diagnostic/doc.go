// Package diagnostic provides structured errors, warnings and infos
// reported while checking descriptions against target classes.
//
// Key capabilities:
//   - Missing member errors with similar member names as suggestions
//   - Invalid description reports
//   - Unmapped class infos for names the mappings pass through unchanged
package diagnostic
