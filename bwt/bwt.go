/*
Package bwt provides the Burrows-Wheeler Transform machinery the fmindex
package treats as an external collaborator: suffix array construction, the
BWT itself, the Less (C) array of cumulative symbol counts, and a sampled
Occ rank structure over the BWT.

# Suffix array and BWT

SuffixArray sorts every suffix of a text lexicographically and returns
the starting offset of each suffix in sorted order; for a text with a
single trailing sentinel this is also the sorted order of its rotations,
as in the table below. Build then reads off
one BWT byte per row: the character immediately preceding that row's
rotation, which is the last column of the conceptually-rotated matrix.

	text:  banana$
	rotations sorted:      SA   BWT
	$banana                6    a
	a$banan                5    n
	ana$ban                3    a
	anana$b                1    b
	banana$                0    $
	na$bana                4    a
	nana$ba                2    n

No special-casing of the sentinel is needed here: '$' is numerically
smaller than every letter, so plain byte comparison already sorts it
first, the way it needs to.

# Less and Occ

Less(a) is the number of BWT bytes strictly less than a - the offset at
which a's run begins in the (implicit, never materialized) first column.
Occ(r, a) is the number of occurrences of a in bwt[0:r]. Together they are
exactly what backward_search needs to turn a one-character-narrower search
range into a one-character-wider pattern match, the LF mapping:

	next.start = Less(a) + Occ(prev.start, a)
	next.end   = Less(a) + Occ(prev.end, a)

Occ is backed by a wavelet tree (internal/succinct), so each query is a
single O(log sigma) descent rather than a scan.
*/
package bwt

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/polyseq/fmindex/alphabet"
	"github.com/polyseq/fmindex/internal/succinct"
)

// SuffixArray returns the starting offsets of every suffix of text,
// sorted lexicographically. It is a deliberately simple O(n^2 log n)
// reference construction: sort n suffixes with an O(n) byte comparison
// each. Production-scale texts would use SA-IS or DC3 instead; this
// package assumes the BWT/SA pair is already built and focuses on what is
// done with it.
func SuffixArray(text []byte) []int {
	sa := make([]int, len(text))
	for i := range sa {
		sa[i] = i
	}
	sort.Slice(sa, func(i, j int) bool {
		return bytes.Compare(text[sa[i]:], text[sa[j]:]) < 0
	})
	return sa
}

// Build returns the BWT of text given its suffix array: one byte per
// suffix array row, the byte immediately preceding that row's rotation.
func Build(text []byte, sa []int) []byte {
	n := len(text)
	bwtBytes := make([]byte, n)
	for i, s := range sa {
		bwtBytes[i] = text[(s-1+n)%n]
	}
	return bwtBytes
}

// Less is the C array: Less.Get(a) is the number of bytes in the indexed
// BWT strictly less than a. It is kept over the full 256-entry byte range,
// one entry past the largest symbol, so that Less.GetNext(a) (= C[a+1]) is
// always defined even for a == 255.
type Less struct {
	cumulative [257]int
}

// NewLess builds the C array over bwtBytes. alpha must contain every byte
// that occurs in bwtBytes, including the sentinel if one is present -
// callers index a DNA text by extending alphabet.DNAWithN() with '$' via
// Insert before calling, the way fmindex.NewFMD does.
func NewLess(bwtBytes []byte, alpha *alphabet.Alphabet) (Less, error) {
	if !alpha.IsWord(bwtBytes) {
		return Less{}, fmt.Errorf("bwt: bwt contains a byte outside the given alphabet")
	}

	var freq [256]int
	for _, b := range bwtBytes {
		freq[b]++
	}

	var l Less
	cum := 0
	for a := 0; a < 256; a++ {
		l.cumulative[a] = cum
		cum += freq[a]
	}
	l.cumulative[256] = cum
	return l, nil
}

// Get returns the number of bytes in the indexed BWT strictly less than a.
func (l Less) Get(a byte) int {
	return l.cumulative[a]
}

// GetNext returns C[a+1]: the number of bytes strictly less than the
// symbol immediately following a in the fixed lexicographic order used to
// build this C array. fmindex.InitInterval uses GetNext(a) - Get(a) to
// count occurrences of a in the BWT without a separate frequency table.
func (l Less) GetNext(a byte) int {
	return l.cumulative[int(a)+1]
}

// Occ is the sampled rank structure over a BWT: Occ.Get(r, a) is the
// number of occurrences of a in bwt[0:r], answered via a wavelet tree
// descent rather than a linear scan.
type Occ struct {
	wt succinct.WaveletTree
}

// NewOcc builds an Occ index over bwtBytes. alpha must contain every byte
// that occurs in bwtBytes, same precondition as NewLess. k is the rank
// sampling period: it is forwarded as the block size (in words) of the
// rank index backing every level of the underlying wavelet tree (see
// succinct.NewRankIndex) - a larger k checkpoints less often, trading
// query time for memory the same way a coarser checkpoint array would.
func NewOcc(bwtBytes []byte, k int, alpha *alphabet.Alphabet) (Occ, error) {
	if !alpha.IsWord(bwtBytes) {
		return Occ{}, fmt.Errorf("bwt: bwt contains a byte outside the given alphabet")
	}
	wt, err := succinct.NewWaveletTree(bwtBytes, k)
	if err != nil {
		return Occ{}, fmt.Errorf("bwt: %w", err)
	}
	return Occ{wt: wt}, nil
}

// Get returns the number of occurrences of a in bwt[0:r].
func (o Occ) Get(r int, a byte) int {
	return o.wt.Rank(a, r)
}

// At returns the ith byte of the indexed BWT.
func (o Occ) At(i int) byte {
	return o.wt.Access(i)
}

// Len returns the length of the indexed BWT.
func (o Occ) Len() int {
	return o.wt.Len()
}
