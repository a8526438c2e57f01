// Package textutil provides text canonicalization and similarity scoring for
// track matching, plus filename sanitization for playlist folders.
//
// Normalize folds a raw artist, title, or filename string into a canonical
// comparison form: NFKD decomposition, lowercasing, removal of parenthesized
// release qualifiers ("remaster", "remix", years, ...), diacritic expansion,
// and whitespace collapsing. The function is total and idempotent, so callers
// may normalize already-normalized input freely.
//
// Similarity computes a Ratcliff/Obershelp ratio over normalized inputs.
// Matching works on recursively located longest common substrings rather than
// edit distance, which rewards shared phrases in reordered or partially
// mangled titles.
package textutil
