/*
Package transform provides the DNA complement table the FMD index needs to
extend a backward search into a forward one: Comp complements a single
byte, and RevComp reverse-complements a whole sequence.
*/
package transform

// complementTable maps a DNA-with-N byte (plus the sentinel) to its
// complement. Case is preserved; N/n and $ complement to themselves.
var complementTable = map[byte]byte{
	'A': 'T', 'T': 'A',
	'C': 'G', 'G': 'C',
	'N': 'N',
	'a': 't', 't': 'a',
	'c': 'g', 'g': 'c',
	'n': 'n',
	'$': '$',
}

// Comp returns the complement of a single DNA-with-N byte, or the sentinel
// itself if a is the sentinel. It panics if a is outside that alphabet;
// callers validate against alphabet.DNAWithN() (plus the sentinel) before
// calling.
func Comp(a byte) byte {
	c, ok := complementTable[a]
	if !ok {
		panic("transform: byte is not in the DNA-with-N-and-sentinel alphabet")
	}
	return c
}

// RevComp reverse-complements seq: RevComp.Get(seq)[i] == Comp(seq[len(seq)-1-i]).
type RevComp struct{}

// Get returns the reverse complement of seq.
func (RevComp) Get(seq []byte) []byte {
	out := make([]byte, len(seq))
	n := len(seq)
	for i, b := range seq {
		out[n-1-i] = Comp(b)
	}
	return out
}
