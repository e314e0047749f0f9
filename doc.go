// Package jsoncompat repairs JSON streams that contain the non-standard
// numeric literals NaN and Infinity, which some producers (notably Python's
// traditional json module) emit where the JSON grammar requires a number. A
// strict parser rejects such documents; this package rewrites every NaN and
// Infinity token to the valid literal 0.0 on the fly, so the stream parses.
// The minus sign of -Infinity passes through untouched and the result is
// -0.0, itself a valid literal.
//
// # Design overview
//
//   - Reader is a pull-based io.Reader adapter: it wraps any source and is
//     itself wrappable, with no options, goroutines, or buffering beyond an
//     8-byte queue and the lookahead needed to resolve a token split across
//     reads.
//   - Token matching is exact and chunk-independent: the output is
//     byte-identical whether either side reads one byte at a time or the
//     whole stream at once.
//   - Translate applies the same substitution to a byte slice in place, for
//     JSON already held in memory.
//   - Unmarshal, Decode, and NewDecoder are conveniences that run the filter
//     in front of a json-iterator decoder.
//
// # Usage
//
//	var v map[string]float64
//	err := jsoncompat.Decode(resp.Body, &v)
//
// Or compose the Reader directly:
//
//	dec := json.NewDecoder(jsoncompat.NewReader(src))
//
// # Caveat: matching is lexical, not structural
//
// The filter does not parse JSON. It cannot tell the invalid literal NaN
// from the same three bytes inside a quoted string, so a key or value that
// literally contains NaN or Infinity is rewritten too:
//
//	{"NaN": 1}   becomes   {"0.0": 1}
//
// Fixing that would require a structural parser, which is exactly what this
// package exists to avoid running before the real one. Integrators for whom
// such collisions matter should not use this filter; Reader.Stats reports
// how many substitutions occurred so unexpected rewrites can at least be
// noticed.
package jsoncompat
