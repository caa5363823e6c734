// ═══════════════════════════════════════════════════════════════════════════════
// INVERTED INDEX
// ═══════════════════════════════════════════════════════════════════════════════
// The index maps each term to the set of documents containing it (with term
// frequency and token positions) and tracks each document's length. It is
// built once from a document set and a tokenizer, and is immutable afterward
// — safe to share across any number of concurrent readers without locking.
//
// Internally, documents are assigned a dense integer id (0..N-1, by sorting
// DocumentId strings lexicographically) so that boolean set operations can
// run over *roaring.Bitmap instead of Go maps, and positional postings can be
// kept in an ordered positionList instead of an unsorted slice. Both are
// translated back to DocumentId strings at every exported accessor, so the
// ordering of BuildIndex's input map never leaks into the result.
// ═══════════════════════════════════════════════════════════════════════════════

package sift

import (
	"math/rand"
	"sort"

	"github.com/RoaringBitmap/roaring"
)

// termPostings is everything the index keeps for one term.
type termPostings struct {
	docs      *roaring.Bitmap          // set of internal doc ids containing the term
	positions *positionList            // every (docID, offset) occurrence, ascending
	termFreq  map[int]int              // internal doc id -> occurrence count
}

// InvertedIndex is the built, queryable index over a document set.
type InvertedIndex struct {
	terms map[string]*termPostings

	docIDs   []string       // internal id -> DocumentId, sorted ascending
	idByDoc  map[string]int // DocumentId -> internal id
	docLength map[string]int // DocumentId -> token count (includes zero-token docs)

	rng *rand.Rand
}

// BuildIndex tokenizes every document and assembles the inverted index.
// Internal doc ids are assigned by sorting the DocumentId keys of documents
// lexicographically, so the result is identical regardless of map iteration
// order.
func BuildIndex(documents map[string]string, tokenize TokenizeFunc) *InvertedIndex {
	idx := &InvertedIndex{
		terms:     make(map[string]*termPostings),
		idByDoc:   make(map[string]int, len(documents)),
		docLength: make(map[string]int, len(documents)),
		rng:       rand.New(rand.NewSource(1)),
	}

	idx.docIDs = make([]string, 0, len(documents))
	for docID := range documents {
		idx.docIDs = append(idx.docIDs, docID)
	}
	sort.Strings(idx.docIDs)
	for i, docID := range idx.docIDs {
		idx.idByDoc[docID] = i
	}

	for _, docID := range idx.docIDs {
		idx.indexDocument(docID, documents[docID], tokenize)
	}

	return idx
}

func (idx *InvertedIndex) indexDocument(docID, text string, tokenize TokenizeFunc) {
	internalID := idx.idByDoc[docID]
	tokens := tokenize(text)
	idx.docLength[docID] = len(tokens)

	for offset, term := range tokens {
		tp, ok := idx.terms[term]
		if !ok {
			tp = &termPostings{
				docs:      roaring.New(),
				positions: newPositionList(idx.rng),
				termFreq:  make(map[int]int),
			}
			idx.terms[term] = tp
		}
		tp.docs.Add(uint32(internalID))
		tp.termFreq[internalID]++
		tp.positions.insert(Position{DocumentID: float64(internalID), Offset: float64(offset)})
	}
}

// DocumentCount returns the number of indexed documents.
func (idx *InvertedIndex) DocumentCount() int {
	return len(idx.docIDs)
}

// DocumentFrequency returns the number of documents containing term.
func (idx *InvertedIndex) DocumentFrequency(term string) int {
	tp, ok := idx.terms[term]
	if !ok {
		return 0
	}
	return int(tp.docs.GetCardinality())
}

// TermFrequency returns the number of occurrences of term in docID (0 if the
// term does not occur there or docID is unknown).
func (idx *InvertedIndex) TermFrequency(term, docID string) int {
	tp, ok := idx.terms[term]
	if !ok {
		return 0
	}
	internalID, ok := idx.idByDoc[docID]
	if !ok {
		return 0
	}
	return tp.termFreq[internalID]
}

// DocumentLength returns the token count recorded for docID (0 if unknown).
func (idx *InvertedIndex) DocumentLength(docID string) int {
	return idx.docLength[docID]
}

// Postings returns, in ascending DocumentId order, every document containing
// term. Corresponds to spec's postings_tf[t].keys().
func (idx *InvertedIndex) Postings(term string) []string {
	tp, ok := idx.terms[term]
	if !ok {
		return nil
	}
	return idx.docIDsFromBitmap(tp.docs)
}

// Positions returns the strictly increasing token-offset sequence for term
// within docID (nil if the term doesn't occur there).
func (idx *InvertedIndex) Positions(term, docID string) []int {
	tp, ok := idx.terms[term]
	if !ok {
		return nil
	}
	internalID, ok := idx.idByDoc[docID]
	if !ok {
		return nil
	}
	return tp.positions.offsetsInDocument(internalID)
}

// docBitmap returns the raw roaring bitmap of internal doc ids for term
// (an empty bitmap if the term is absent), for use by the boolean evaluator.
func (idx *InvertedIndex) docBitmap(term string) *roaring.Bitmap {
	tp, ok := idx.terms[term]
	if !ok {
		return roaring.New()
	}
	return tp.docs
}

// universe returns a bitmap containing every internal doc id, used to
// evaluate NOT.
func (idx *InvertedIndex) universe() *roaring.Bitmap {
	all := roaring.New()
	for i := range idx.docIDs {
		all.Add(uint32(i))
	}
	return all
}

// docIDsFromBitmap translates a bitmap of internal ids back to DocumentIds,
// in ascending order (roaring iterates its bitmap in ascending integer
// order, and internal ids were assigned in ascending lexicographic order, so
// no further sort is needed).
func (idx *InvertedIndex) docIDsFromBitmap(bm *roaring.Bitmap) []string {
	if bm.IsEmpty() {
		return nil
	}
	out := make([]string, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, idx.docIDs[it.Next()])
	}
	return out
}

func (idx *InvertedIndex) docIDFor(internalID int) string {
	return idx.docIDs[internalID]
}
