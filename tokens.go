package jsoncompat

// replacement is the literal substituted for every recognised token. It is a
// valid JSON number, its length never exceeds the matched token, and it
// contains neither token first byte, so filtered output can never grow a new
// token (re-filtering is a no-op).
const replacement = "0.0"

// tokens are the literal byte sequences recognised for substitution. Their
// first bytes are distinct, so a single byte classifies the candidate.
var tokens = [...]string{"NaN", "Infinity"}

const (
	tokenNone = -1
	tokenNaN  = 0
	tokenInf  = 1

	// longestToken bounds both the lookahead needed to resolve a match and
	// the pending queue (a failed prefix plus the replacement never exceed
	// it).
	longestToken = len("Infinity")
)

// tokenStart classifies b as the first byte of a candidate token.
func tokenStart(b byte) int {
	switch b {
	case 'N':
		return tokenNaN
	case 'I':
		return tokenInf
	}
	return tokenNone
}
