package jsoncompat

import (
	"bytes"
	"io"
)

const (
	scratchSize = 512
	// A source that keeps returning (0, nil) would otherwise livelock Read,
	// which may not return 0 bytes while work is pending. Same bound as bufio.
	maxConsecutiveEmptyReads = 100
)

// ReaderStats captures cumulative substitution counters for a Reader.
type ReaderStats struct {
	NaN      uint64
	Infinity uint64
}

// Reader filters a JSON byte stream, rewriting the non-standard literals NaN
// and Infinity to the valid JSON number 0.0. Every other byte passes through
// unchanged and in order; -Infinity therefore comes out as -0.0. Matching
// works across arbitrary read boundaries on both sides of the adapter.
//
// Matching is lexical, not structural: the same byte sequences inside a
// quoted JSON string are rewritten too. See the package documentation.
//
// A Reader must not be used from multiple goroutines concurrently.
type Reader struct {
	src io.Reader

	// pending holds bytes owed to the caller ahead of any further scanning:
	// a queued replacement literal, or a replayed prefix of a failed match.
	// Never exceeds longestToken bytes.
	pending    [longestToken]byte
	pendingOff int
	pendingLen int

	// Match cursor: r.matched confirmed bytes of tokens[r.tok].
	tok     int
	matched int

	// Unscanned source bytes.
	scratch [scratchSize]byte
	scanOff int
	scanLen int

	err        error
	emptyReads int

	stats ReaderStats
}

// NewReader wraps src. The Reader borrows src for its lifetime and never
// closes it. There are no options: the substitution behaviour is fixed.
func NewReader(src io.Reader) *Reader {
	if src == nil {
		src = eofSource{}
	}
	return &Reader{src: src, tok: tokenNone}
}

// Read implements io.Reader. It returns 0, io.EOF only once the source is
// exhausted and every queued byte has been delivered. Source errors are
// propagated unchanged after any already-produced output.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n := 0
	for {
		if r.pendingLen > r.pendingOff {
			c := copy(p[n:], r.pending[r.pendingOff:r.pendingLen])
			r.pendingOff += c
			n += c
			if r.pendingOff == r.pendingLen {
				r.pendingOff, r.pendingLen = 0, 0
			}
			if n == len(p) {
				return n, nil
			}
		}
		if r.scanOff < r.scanLen {
			n += r.scan(p[n:])
			if n == len(p) {
				return n, nil
			}
			continue
		}
		if r.err != nil {
			if r.matched > 0 && r.err == io.EOF {
				// The stream ended mid-candidate: the prefix was never a
				// token, replay it verbatim.
				r.queuePrefix()
				continue
			}
			if n > 0 {
				return n, nil
			}
			return 0, r.err
		}
		if n > 0 && r.matched == 0 {
			// Output is ready and no match needs resolving: hand it over
			// rather than block on another source read.
			return n, nil
		}
		r.fill(len(p) - n)
	}
}

// scan consumes scratch bytes, copying pass-through spans into dst. It stops
// as soon as a token resolves (completion or failure), leaving the outcome in
// the pending queue so emission order is preserved.
func (r *Reader) scan(dst []byte) int {
	n := 0
	for r.scanOff < r.scanLen && n < len(dst) {
		if r.matched == 0 {
			window := r.scratch[r.scanOff:r.scanLen]
			i := indexTokenStart(window)
			if i != 0 {
				if i < 0 {
					i = len(window)
				}
				c := copy(dst[n:], window[:i])
				n += c
				r.scanOff += c
				continue
			}
			r.tok = tokenStart(window[0])
			r.matched = 1
			r.scanOff++
			continue
		}
		t := tokens[r.tok]
		if r.scratch[r.scanOff] != t[r.matched] {
			// Failed match: replay the confirmed prefix; the disagreeing
			// byte stays put and is re-evaluated afresh (it may itself
			// start a new candidate, as in NNaN).
			r.queuePrefix()
			return n
		}
		r.scanOff++
		r.matched++
		if r.matched == len(t) {
			r.queueReplacement()
			return n
		}
	}
	return n
}

// fill pulls more source bytes into scratch. It requests at most the
// caller's remaining capacity, except that resolving an in-progress match
// may need up to longestToken-1 bytes of lookahead beyond it.
func (r *Reader) fill(want int) {
	if r.matched > 0 {
		if need := len(tokens[r.tok]) - r.matched; want < need {
			want = need
		}
	}
	if want < 1 {
		want = 1
	}
	if want > scratchSize {
		want = scratchSize
	}
	m, err := r.src.Read(r.scratch[:want])
	r.scanOff, r.scanLen = 0, m
	if m > 0 {
		r.emptyReads = 0
	} else if err == nil {
		r.emptyReads++
		if r.emptyReads >= maxConsecutiveEmptyReads {
			err = io.ErrNoProgress
		}
	}
	if err != nil {
		r.err = err
	}
}

// queueReplacement records a completed match. The pending queue is always
// empty here: scan returns to drain it before resuming.
func (r *Reader) queueReplacement() {
	switch r.tok {
	case tokenNaN:
		r.stats.NaN++
	case tokenInf:
		r.stats.Infinity++
	}
	r.pendingOff = 0
	r.pendingLen = copy(r.pending[:], replacement)
	r.tok, r.matched = tokenNone, 0
}

// queuePrefix replays the confirmed bytes of a failed or truncated match.
func (r *Reader) queuePrefix() {
	r.pendingOff = 0
	r.pendingLen = copy(r.pending[:], tokens[r.tok][:r.matched])
	r.tok, r.matched = tokenNone, 0
}

// Stats returns cumulative substitution counters. Useful because matching is
// blind: it is the only way to observe that rewrites happened at all.
func (r *Reader) Stats() ReaderStats {
	if r == nil {
		return ReaderStats{}
	}
	return r.stats
}

// indexTokenStart returns the offset of the first byte that could begin a
// token, or -1 if the window is entirely pass-through.
func indexTokenStart(window []byte) int {
	i := bytes.IndexByte(window, 'N')
	j := bytes.IndexByte(window, 'I')
	switch {
	case i < 0:
		return j
	case j < 0 || i < j:
		return i
	}
	return j
}

type eofSource struct{}

func (eofSource) Read([]byte) (int, error) { return 0, io.EOF }
