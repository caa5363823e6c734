// ═══════════════════════════════════════════════════════════════════════════════
// RANKER: TF-IDF cosine similarity
// ═══════════════════════════════════════════════════════════════════════════════
// Classic vector-space scoring: build a query vector and a document vector
// over the surviving query terms, weight each component by smoothed IDF, and
// score by cosine similarity. Deterministic tie-break by DocumentId keeps
// result order stable across runs.
// ═══════════════════════════════════════════════════════════════════════════════

package sift

import (
	"math"
	"sort"

	"github.com/RoaringBitmap/roaring"
)

// RankedResult is one scored document.
type RankedResult struct {
	DocID string
	Score float64
}

// idf returns the smoothed inverse document frequency for a term with
// document frequency df, over a corpus of n documents. The +1 smoothing
// avoids division by zero and guarantees idf never goes negative.
func idf(n, df int) float64 {
	return math.Log(float64(n+1)/float64(df+1)) + 1.0
}

func l2Norm(vec map[string]float64) float64 {
	var sumSquares float64
	for _, v := range vec {
		sumSquares += v * v
	}
	return math.Sqrt(sumSquares)
}

// Rank scores and orders documents matching queryTerms by TF-IDF cosine
// similarity. If filtered is true, results are restricted to candidateDocs
// (the boolean evaluator's matched set, which may legitimately be empty);
// if filtered is false, candidateDocs is ignored and every document any
// surviving query term appears in is considered. Returns an empty slice if
// the query vector has zero norm (all terms absent from the corpus, or
// queryTerms is empty) or, when filtered, if candidateDocs is empty.
func Rank(queryTerms []string, idx *InvertedIndex, candidateDocs []string, filtered bool) []RankedResult {
	n := idx.DocumentCount()

	queryTF := make(map[string]int)
	for _, t := range queryTerms {
		queryTF[t]++
	}

	queryVec := make(map[string]float64)
	termIDF := make(map[string]float64)
	for t, tf := range queryTF {
		df := idx.DocumentFrequency(t)
		if df == 0 {
			continue
		}
		w := idf(n, df)
		termIDF[t] = w
		queryVec[t] = float64(tf) * w
	}

	queryNorm := l2Norm(queryVec)
	if queryNorm == 0 {
		return nil
	}

	candidates := termCandidates(termIDF, idx)
	if filtered {
		filter := roaring.New()
		for _, d := range candidateDocs {
			if internalID, ok := idx.idByDoc[d]; ok {
				filter.Add(uint32(internalID))
			}
		}
		candidates.And(filter)
	}

	var results []RankedResult
	it := candidates.Iterator()
	for it.HasNext() {
		internalID := it.Next()
		docID := idx.docIDFor(int(internalID))

		docVec := make(map[string]float64)
		for t, w := range termIDF {
			tf := idx.TermFrequency(t, docID)
			if tf > 0 {
				docVec[t] = float64(tf) * w
			}
		}
		docNorm := l2Norm(docVec)
		if docNorm == 0 {
			continue
		}

		var dot float64
		for t, qw := range queryVec {
			dot += qw * docVec[t]
		}
		score := dot / (queryNorm * docNorm)
		results = append(results, RankedResult{DocID: docID, Score: score})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].DocID < results[j].DocID
	})
	return results
}

// termCandidates returns the union of posting doc-sets for every term in
// termIDF (the query terms present in the corpus).
func termCandidates(termIDF map[string]float64, idx *InvertedIndex) *roaring.Bitmap {
	union := roaring.New()
	for t := range termIDF {
		union.Or(idx.docBitmap(t))
	}
	return union
}
