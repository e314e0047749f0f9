package jsoncompat

// Translate applies the NaN/Infinity substitution to b in place and returns
// the prefix of b holding the result. In-place rewriting is safe because no
// replacement is longer than its token; since Infinity shrinks to 0.0, the
// returned slice may be shorter than b. The end of the slice behaves like
// end-of-stream: an incomplete trailing candidate is kept verbatim.
//
// For any input, Translate produces exactly the bytes a Reader over the same
// input would produce.
func Translate(b []byte) []byte {
	w := 0
	tok, matched := tokenNone, 0
	for i := 0; i < len(b); {
		if matched == 0 {
			window := b[i:]
			j := indexTokenStart(window)
			if j != 0 {
				if j < 0 {
					j = len(window)
				}
				if w != i {
					copy(b[w:], b[i:i+j])
				}
				w += j
				i += j
				continue
			}
			tok = tokenStart(window[0])
			matched = 1
			i++
			continue
		}
		t := tokens[tok]
		if b[i] != t[matched] {
			// Replay the failed prefix and re-evaluate the current byte.
			w += copy(b[w:], t[:matched])
			matched = 0
			continue
		}
		i++
		matched++
		if matched == len(t) {
			w += copy(b[w:], replacement)
			matched = 0
		}
	}
	if matched > 0 {
		w += copy(b[w:], tokens[tok][:matched])
	}
	return b[:w]
}
