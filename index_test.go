package sift

import (
	"reflect"
	"testing"
)

func TestBuildIndexSingleDocument(t *testing.T) {
	idx := BuildIndex(map[string]string{"d1": "quick brown fox"}, Tokenize)

	if idx.DocumentCount() != 1 {
		t.Fatalf("DocumentCount() = %d, want 1", idx.DocumentCount())
	}
	for _, term := range []string{"quick", "brown", "fox"} {
		if idx.DocumentFrequency(term) != 1 {
			t.Errorf("DocumentFrequency(%q) = %d, want 1", term, idx.DocumentFrequency(term))
		}
	}
	if idx.DocumentLength("d1") != 3 {
		t.Errorf("DocumentLength(d1) = %d, want 3", idx.DocumentLength("d1"))
	}
}

func TestBuildIndexTermFrequencyAndPositions(t *testing.T) {
	idx := BuildIndex(map[string]string{"d1": "fox fox jumps"}, Tokenize)

	if got := idx.TermFrequency("fox", "d1"); got != 2 {
		t.Fatalf("TermFrequency(fox, d1) = %d, want 2", got)
	}
	if got := idx.Positions("fox", "d1"); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Fatalf("Positions(fox, d1) = %v, want [0 1]", got)
	}
	if got := idx.Positions("jumps", "d1"); !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("Positions(jumps, d1) = %v, want [2]", got)
	}
}

func TestBuildIndexPostingsInvariant(t *testing.T) {
	docs := map[string]string{
		"c": "quick fox",
		"a": "quick brown fox",
		"b": "lazy dog",
	}
	idx := BuildIndex(docs, Tokenize)

	got := idx.Postings("quick")
	want := []string{"a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Postings(quick) = %v, want %v (ascending DocumentId order)", got, want)
	}

	for term := range map[string]bool{"quick": true, "fox": true, "brown": true, "lazy": true, "dog": true} {
		for _, docID := range idx.Postings(term) {
			if tf := idx.TermFrequency(term, docID); tf != len(idx.Positions(term, docID)) {
				t.Errorf("term %q doc %q: term frequency %d != len(positions) %d", term, docID, tf, len(idx.Positions(term, docID)))
			}
		}
	}
}

func TestBuildIndexEmptyDocument(t *testing.T) {
	idx := BuildIndex(map[string]string{"empty": "   ...---   ", "d2": "word"}, Tokenize)

	if idx.DocumentLength("empty") != 0 {
		t.Errorf("DocumentLength(empty) = %d, want 0", idx.DocumentLength("empty"))
	}
	if idx.DocumentCount() != 2 {
		t.Errorf("DocumentCount() = %d, want 2", idx.DocumentCount())
	}
}

func TestBuildIndexDeterministicAcrossMapOrder(t *testing.T) {
	docs := map[string]string{
		"z": "alpha beta",
		"m": "beta gamma",
		"a": "alpha gamma",
	}
	idx1 := BuildIndex(docs, Tokenize)
	idx2 := BuildIndex(docs, Tokenize)

	for _, term := range []string{"alpha", "beta", "gamma"} {
		if !reflect.DeepEqual(idx1.Postings(term), idx2.Postings(term)) {
			t.Fatalf("Postings(%q) differ between builds: %v vs %v", term, idx1.Postings(term), idx2.Postings(term))
		}
	}
}

func TestUnknownTermAndDocument(t *testing.T) {
	idx := BuildIndex(map[string]string{"d1": "fox"}, Tokenize)

	if got := idx.DocumentFrequency("ghost"); got != 0 {
		t.Errorf("DocumentFrequency(ghost) = %d, want 0", got)
	}
	if got := idx.TermFrequency("fox", "ghost-doc"); got != 0 {
		t.Errorf("TermFrequency(fox, ghost-doc) = %d, want 0", got)
	}
	if got := idx.Positions("fox", "ghost-doc"); got != nil {
		t.Errorf("Positions(fox, ghost-doc) = %v, want nil", got)
	}
	if got := idx.Postings("ghost"); got != nil {
		t.Errorf("Postings(ghost) = %v, want nil", got)
	}
}
