package sift

import "errors"

// Sentinel errors returned across the package boundary. Callers compare
// against these with errors.Is; wrap with fmt.Errorf("...: %w", err) at the
// call site to add context without losing the sentinel.
var (
	// ErrMalformedQuery is returned when a query string cannot be parsed:
	// an empty query, an operator with a missing operand, or a word or
	// phrase with no indexable characters.
	ErrMalformedQuery = errors.New("sift: malformed query")

	// ErrInvalidArgument is returned for a structurally valid request with
	// an out-of-range argument, such as a negative limit or offset.
	ErrInvalidArgument = errors.New("sift: invalid argument")

	// ErrMissingCorpus is returned when the document set a SearchEngine is
	// asked to build from is absent or empty.
	ErrMissingCorpus = errors.New("sift: missing corpus")
)
