// Package diagnostic provides structured warnings and errors produced while
// loading and validating translation tables.
//
// Key capabilities:
//   - Unknown keyword warnings with "did you mean" suggestions
//   - Malformed specification and dependency errors
//   - Groups that can never resolve (no input key, no default)
//   - A single combined error for fail-fast callers
package diagnostic
