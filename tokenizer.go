// ═══════════════════════════════════════════════════════════════════════════════
// TOKENIZATION
// ═══════════════════════════════════════════════════════════════════════════════
// Tokenization is the first step of the pipeline: turning raw text into the
// ordered sequence of terms everything downstream — the indexer and the query
// parser alike — agrees on.
//
// THE CONTRACT:
// -------------
//  1. Lowercase the input.
//  2. Extract every maximal run of [a-z0-9]; each run is one term, in order.
//  3. Everything else (whitespace, punctuation, non-ASCII) separates terms
//     and produces nothing.
//
// EXAMPLE:
// --------
//
//	Tokenize("The Quick-Brown Fox #1!") → ["the", "quick", "brown", "fox", "1"]
//
// Note there is no stopword removal and no stemming here — unlike a general
// text-analysis pipeline, this tokenizer's output is also what the query
// parser re-tokenizes WORD and PHRASE bodies through (see query.go), so it
// must be exactly reversible: the same substring always yields the same
// terms, and a term is never split, merged, or dropped.
// ═══════════════════════════════════════════════════════════════════════════════

package sift

import "strings"

// TokenizeFunc is the shape both the indexer and the query parser consume.
// Injecting it as a function value (rather than a global) keeps the two in
// lockstep without either depending on a concrete tokenizer type.
type TokenizeFunc func(text string) []string

// Tokenize splits text into lowercase alphanumeric terms.
//
// ALGORITHM:
// ----------
// A single pass over the bytes of the lowercased input, accumulating a run
// of [a-z0-9] and flushing it as a term whenever a non-matching byte (or the
// end of input) is reached. Runs are returned in order of appearance; no
// term is ever empty.
func Tokenize(text string) []string {
	lowered := strings.ToLower(text)

	terms := make([]string, 0, len(lowered)/4+1)
	start := -1
	for i := 0; i < len(lowered); i++ {
		c := lowered[i]
		if isTermByte(c) {
			if start == -1 {
				start = i
			}
			continue
		}
		if start != -1 {
			terms = append(terms, lowered[start:i])
			start = -1
		}
	}
	if start != -1 {
		terms = append(terms, lowered[start:])
	}
	return terms
}

// isTermByte reports whether b is part of the term alphabet [a-z0-9].
//
// Restricted to ASCII on purpose: spec.md's Term type is "a non-empty
// lowercase string of ASCII letters and digits", so non-ASCII runes (already
// lowercased by strings.ToLower) are separators, same as punctuation.
func isTermByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
