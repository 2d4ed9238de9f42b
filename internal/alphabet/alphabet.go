// Package alphabet holds the fixed DNA-like symbol tables shared by
// construction and search. Keeping the translation tables in their own
// package mirrors how the ART index math is isolated from the node and
// table types in the parent package.
package alphabet

const (
	// LMax is the longest string the trie can index or query.
	LMax = 127

	// M sizes the mile-cache array: one slot per depth plus the length
	// prefix and the EOS terminator carried over from the original
	// translated-query layout.
	M = LMax + 2

	// EOS terminates a translated query inside dash's exact-match walk.
	EOS = 6

	// Ambiguous is the symbol code assigned to N, or to any byte the
	// construction table doesn't recognize.
	Ambiguous = 4

	// NoMatch is the altranslate code for query bytes that must never
	// match a trie edge: no child ever occupies this slot, so comparing
	// against it always costs a mismatch.
	NoMatch = 5

	// MaxTau is the hard ceiling on tolerance: the packed ancestor path
	// is a 32-bit word with 4 bits per symbol, so at most 8 symbols of
	// context are addressable.
	MaxTau = 8
)

// translate maps a construction-time byte to a symbol code in 0..4.
// Unrecognized bytes fall back to Ambiguous, matching the reference
// implementation, which never validates the translated code before
// using it as a child-array index.
var translate [256]byte

// altranslate maps a query-time byte to a symbol code in 0..3, or to
// NoMatch for anything that isn't a clean base call. This keeps
// ambiguous query positions from ever satisfying an edge comparison.
var altranslate [256]byte

func init() {
	for i := range translate {
		translate[i] = Ambiguous
		altranslate[i] = NoMatch
	}
	for _, b := range []struct {
		upper, lower byte
		code         byte
	}{
		{'A', 'a', 0},
		{'C', 'c', 1},
		{'G', 'g', 2},
		{'T', 't', 3},
	} {
		translate[b.upper] = b.code
		translate[b.lower] = b.code
		altranslate[b.upper] = b.code
		altranslate[b.lower] = b.code
	}
	translate['N'] = Ambiguous
	translate['n'] = Ambiguous
}

// Translate returns the construction-time symbol code for b, in 0..4.
func Translate(b byte) byte { return translate[b] }

// Altranslate returns the query-time symbol code for b: 0..3 for a
// clean base call, NoMatch otherwise.
func Altranslate(b byte) byte { return altranslate[b] }
