package sift

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single word", "hello", []string{"hello"}},
		{"lowercases", "Hello World", []string{"hello", "world"}},
		{"punctuation separates", "hello, world!", []string{"hello", "world"}},
		{"digits are term bytes", "fastapi api2", []string{"fastapi", "api2"}},
		{"hyphen separates", "quick-brown fox", []string{"quick", "brown", "fox"}},
		{"non-ascii separates", "café crème", []string{"caf", "cr", "me"}},
		{"only separators", "   !!!---   ", nil},
		{"no deduplication", "api api api", []string{"api", "api", "api"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Tokenize(tc.input)
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestTokenizeNoEmptyTerms(t *testing.T) {
	for _, term := range Tokenize("a.b..c...d") {
		if term == "" {
			t.Fatalf("Tokenize produced an empty term")
		}
	}
}

func TestTokenizeIdempotentOnJoinedOutput(t *testing.T) {
	inputs := []string{
		"the quick brown fox",
		"python fastapi api2 sql99",
		"a b c d e",
	}
	for _, in := range inputs {
		first := Tokenize(in)
		second := Tokenize(strings.Join(first, " "))
		if !reflect.DeepEqual(first, second) {
			t.Errorf("tokenize not idempotent for %q: %v != %v", in, first, second)
		}
	}
}
