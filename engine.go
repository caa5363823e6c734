// ═══════════════════════════════════════════════════════════════════════════════
// SEARCH ENGINE FACADE
// ═══════════════════════════════════════════════════════════════════════════════
// SearchEngine ties the pipeline together: parse the query, evaluate the
// boolean structure, rank the survivors, slice the window, attach document
// text. It is built once from a document set and is immutable afterward —
// Search has no side effects and no internal mutable state, so any number of
// callers can search concurrently.
// ═══════════════════════════════════════════════════════════════════════════════

package sift

import (
	"fmt"
	"log/slog"
	"sort"
)

// Result is one ranked, text-attached search hit.
type Result struct {
	DocID string
	Score float64
	Text  string
}

// SearchEngine is the read-only facade over a built index and its source
// documents.
type SearchEngine struct {
	index     *InvertedIndex
	documents map[string]string
	tokenize  TokenizeFunc
	logger    *slog.Logger
}

// NewSearchEngine builds an index over documents and returns a ready-to-query
// engine. Returns ErrMissingCorpus if documents is empty.
func NewSearchEngine(documents map[string]string, tokenize TokenizeFunc) (*SearchEngine, error) {
	if len(documents) == 0 {
		return nil, ErrMissingCorpus
	}
	logger := slog.Default()
	logger.Info("building index", slog.Int("documentCount", len(documents)))
	return &SearchEngine{
		index:     BuildIndex(documents, tokenize),
		documents: documents,
		tokenize:  tokenize,
		logger:    logger,
	}, nil
}

// Search parses query, evaluates and ranks it, and returns the
// [offset, offset+limit) window of results with document text attached.
func (e *SearchEngine) Search(query string, limit, offset int) ([]Result, error) {
	if limit < 0 || offset < 0 {
		return nil, fmt.Errorf("limit=%d offset=%d: %w", limit, offset, ErrInvalidArgument)
	}

	ast, err := ParseQuery(query, e.tokenize)
	if err != nil {
		e.logger.Warn("malformed query", slog.String("query", query), slog.Any("err", err))
		return nil, err
	}

	candidates := Evaluate(ast, e.index)
	positiveTerms := PositiveTerms(ast)

	var ranked []RankedResult
	if len(positiveTerms) == 0 {
		ranked = lexicographicZeroScore(candidates)
	} else {
		ranked = Rank(positiveTerms, e.index, candidates, true)
	}

	window := sliceWindow(ranked, offset, limit)
	results := make([]Result, len(window))
	for i, r := range window {
		results[i] = Result{DocID: r.DocID, Score: r.Score, Text: e.documents[r.DocID]}
	}
	e.logger.Info("search", slog.String("query", query), slog.Int("matched", len(candidates)), slog.Int("returned", len(results)))
	return results, nil
}

// lexicographicZeroScore handles the "no positive terms" branch (e.g. a pure
// negation like `NOT foo`): results are the boolean-filtered DocumentIds
// sorted lexicographically, each scored 0.0.
func lexicographicZeroScore(docIDs []string) []RankedResult {
	sorted := append([]string(nil), docIDs...)
	sort.Strings(sorted)
	results := make([]RankedResult, len(sorted))
	for i, d := range sorted {
		results[i] = RankedResult{DocID: d, Score: 0.0}
	}
	return results
}

func sliceWindow(results []RankedResult, offset, limit int) []RankedResult {
	if offset >= len(results) {
		return nil
	}
	end := offset + limit
	if end > len(results) {
		end = len(results)
	}
	return results[offset:end]
}
