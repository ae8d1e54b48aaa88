// Package textutil canonicalizes raw document text before vectorization.
//
// The primary use cases are:
//   - Collapsing whitespace runs (spaces, tabs, newlines) into single spaces
//   - Stripping punctuation and symbols without merging adjacent words
//   - Producing the lowercase canonical form consumed by the features package
//
// Normalize is pure, deterministic and idempotent. Letters and numbers from any
// script survive, as does the underscore; everything else that is not
// whitespace is removed.
package textutil
