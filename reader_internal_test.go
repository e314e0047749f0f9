package jsoncompat

import "testing"

// The replay rule pushes a failed prefix to the queue verbatim, without
// re-scanning it; only the disagreeing byte is re-evaluated. That is sound
// only while no proper token prefix contains a token start byte past its
// first position. Guard the property against token table edits.
func TestTokenPrefixReplaySound(t *testing.T) {
	for _, tok := range tokens {
		for k := 1; k < len(tok); k++ {
			prefix := tok[:k]
			for i := 1; i < len(prefix); i++ {
				if tokenStart(prefix[i]) != tokenNone {
					t.Fatalf("prefix %q of %q hides a token start at %d; verbatim replay would skip it", prefix, tok, i)
				}
			}
		}
	}
}

func TestReplacementInvariants(t *testing.T) {
	for i := range replacement {
		if tokenStart(replacement[i]) != tokenNone {
			t.Fatalf("replacement %q contains a token start byte; refiltering would not be a no-op", replacement)
		}
	}
	for _, tok := range tokens {
		if len(replacement) > len(tok) {
			t.Fatalf("replacement %q longer than token %q; in-place Translate would be unsound", replacement, tok)
		}
		if len(tok) > longestToken {
			t.Fatalf("token %q exceeds longestToken %d; queue bound broken", tok, longestToken)
		}
	}
}

func TestTokenStart(t *testing.T) {
	if got := tokenStart('N'); got != tokenNaN {
		t.Fatalf("tokenStart('N') = %d, want %d", got, tokenNaN)
	}
	if got := tokenStart('I'); got != tokenInf {
		t.Fatalf("tokenStart('I') = %d, want %d", got, tokenInf)
	}
	for _, b := range []byte{'n', 'i', 'a', '-', '0', '"', 0x00, 0xff} {
		if got := tokenStart(b); got != tokenNone {
			t.Fatalf("tokenStart(%q) = %d, want none", b, got)
		}
	}
}

func TestIndexTokenStart(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", -1},
		{"no candidates here", -1},
		{"NaN", 0},
		{"Infinity", 0},
		{"..N..I..", 2},
		{"..I..N..", 2},
		{"......N", 6},
	}
	for _, tc := range cases {
		if got := indexTokenStart([]byte(tc.in)); got != tc.want {
			t.Fatalf("indexTokenStart(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
