// Package match provides keyword normalization and Levenshtein-based
// suggestions for translation table keywords.
//
// Key functions:
//   - NormalizeKeyword: folds "InputPosition", "input_position" and
//     "Input-Position" to the same key
//   - EditDistance, Similarity: rune-wise Levenshtein scoring
//   - Suggest: ranks known keywords close to a misspelled one
package match
