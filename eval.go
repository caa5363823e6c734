// ═══════════════════════════════════════════════════════════════════════════════
// QUERY EVALUATION
// ═══════════════════════════════════════════════════════════════════════════════
// Evaluate walks a parsed AST against an InvertedIndex and returns the set of
// matching documents as a *roaring.Bitmap of internal doc ids — And/Or/Not
// are then plain bitmap intersection/union/difference, the operation a
// roaring bitmap is built for. Phrase is evaluated separately, by walking
// positional postings directly (see evaluatePhrase).
// ═══════════════════════════════════════════════════════════════════════════════

package sift

import "github.com/RoaringBitmap/roaring"

// Evaluate returns every DocumentId matching ast, in ascending order.
func Evaluate(ast Node, idx *InvertedIndex) []string {
	return idx.docIDsFromBitmap(evaluate(ast, idx))
}

func evaluate(ast Node, idx *InvertedIndex) *roaring.Bitmap {
	switch n := ast.(type) {
	case Term:
		return idx.docBitmap(n.Value).Clone()
	case Phrase:
		return evaluatePhrase(n, idx)
	case And:
		left := evaluate(n.Left, idx)
		left.And(evaluate(n.Right, idx))
		return left
	case Or:
		left := evaluate(n.Left, idx)
		left.Or(evaluate(n.Right, idx))
		return left
	case Not:
		universe := idx.universe()
		universe.AndNot(evaluate(n.Operand, idx))
		return universe
	default:
		return roaring.New()
	}
}

// evaluatePhrase finds every document where n.Terms occur consecutively, in
// order. The candidate set is the intersection of each term's posting
// doc-set; for each candidate, every starting position of the first term is
// checked against the later terms' position sets (hash/bitmap membership,
// via positionList.offsetsInDocument + a set) for the run term₂ at p+1,
// term₃ at p+2, ... For a single Term (k=1) the caller never builds a
// Phrase node (ParseQuery desugars to Term), so this assumes k >= 2.
func evaluatePhrase(n Phrase, idx *InvertedIndex) *roaring.Bitmap {
	candidates := idx.docBitmap(n.Terms[0]).Clone()
	for _, t := range n.Terms[1:] {
		candidates.And(idx.docBitmap(t))
	}

	matches := roaring.New()
	it := candidates.Iterator()
	for it.HasNext() {
		docID := int(it.Next())
		if phraseOccursInDocument(n.Terms, docID, idx) {
			matches.Add(uint32(docID))
		}
	}
	return matches
}

// phraseOccursInDocument reports whether terms occur consecutively
// somewhere in docID: for every starting offset of terms[0], check that
// terms[1] occurs at +1, terms[2] at +2, and so on, using each later term's
// offset set for O(1) membership.
func phraseOccursInDocument(terms []string, docID int, idx *InvertedIndex) bool {
	starts := idx.terms[terms[0]].positions.offsetsInDocument(docID)

	laterOffsets := make([]map[int]bool, len(terms)-1)
	for i, t := range terms[1:] {
		offsets := idx.terms[t].positions.offsetsInDocument(docID)
		set := make(map[int]bool, len(offsets))
		for _, o := range offsets {
			set[o] = true
		}
		laterOffsets[i] = set
	}

	for _, start := range starts {
		matched := true
		for i := range laterOffsets {
			if !laterOffsets[i][start+i+1] {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

// PositiveTerms returns the bag of terms appearing under an even number of
// Not ancestors (zero counts as even). Repetitions are preserved: a term
// occurring twice in the query contributes twice, which is what the ranker
// needs to compute query term frequency.
func PositiveTerms(ast Node) []string {
	var terms []string
	collectPositiveTerms(ast, false, &terms)
	return terms
}

func collectPositiveTerms(ast Node, negated bool, out *[]string) {
	switch n := ast.(type) {
	case Term:
		if !negated {
			*out = append(*out, n.Value)
		}
	case Phrase:
		if !negated {
			*out = append(*out, n.Terms...)
		}
	case And:
		collectPositiveTerms(n.Left, negated, out)
		collectPositiveTerms(n.Right, negated, out)
	case Or:
		collectPositiveTerms(n.Left, negated, out)
		collectPositiveTerms(n.Right, negated, out)
	case Not:
		collectPositiveTerms(n.Operand, !negated, out)
	}
}
