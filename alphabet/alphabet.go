/*
Package alphabet describes the admissible bytes of a text indexed by the
bwt and fmindex packages: a plain membership set over the 256 possible
byte values, with constructors for the DNA and DNA-with-N alphabets the
FMD index requires.
*/
package alphabet

import "github.com/polyseq/fmindex/internal/succinct"

// Alphabet is the set of bytes admissible in a text. Construction
// functions in bwt and fmindex use it to validate a BWT or text before
// indexing it: every byte they see must answer true to Contains, or the
// index they would build could not be queried correctly.
type Alphabet struct {
	membership succinct.BitVector
}

// New returns an Alphabet containing exactly the given symbols.
func New(symbols ...byte) *Alphabet {
	a := &Alphabet{membership: succinct.NewBitVector(256)}
	for _, s := range symbols {
		a.Insert(s)
	}
	return a
}

// Insert adds a symbol to the alphabet. FMD index construction uses this
// to extend a DNA-with-N alphabet with the sentinel `$` before validating
// a BWT against it.
func (a *Alphabet) Insert(symbol byte) {
	a.membership.SetBit(int(symbol), true)
}

// Contains reports whether symbol is a member of the alphabet.
func (a *Alphabet) Contains(symbol byte) bool {
	return a.membership.Bit(int(symbol))
}

// IsWord reports whether every byte of seq is a member of the alphabet.
func (a *Alphabet) IsWord(seq []byte) bool {
	for _, b := range seq {
		if !a.Contains(b) {
			return false
		}
	}
	return true
}

// Symbols returns the alphabet's members in ascending byte order.
func (a *Alphabet) Symbols() []byte {
	var symbols []byte
	for b := 0; b < 256; b++ {
		if a.membership.Bit(b) {
			symbols = append(symbols, byte(b))
		}
	}
	return symbols
}

// DNA returns the four-letter uppercase nucleotide alphabet {A, C, G, T},
// without a sentinel.
func DNA() *Alphabet {
	return New('A', 'C', 'G', 'T')
}

// DNAWithN returns the nucleotide alphabet extended with the ambiguous
// base N/n and the lowercase, soft-masked form of every symbol, without a
// sentinel. This is the alphabet FMDIndex construction inserts `$` into
// before validating a text against it; see Li (2012).
func DNAWithN() *Alphabet {
	return New('A', 'C', 'G', 'T', 'N', 'a', 'c', 'g', 't', 'n')
}
