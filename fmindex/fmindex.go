/*
Package fmindex implements FM-Index backward search and the FMD-Index
Supermaximal Exact Match (SMEM) algebra over a Burrows-Wheeler Transform.

# FMIndexCore and backward search

core owns a bwt.Less and a bwt.Occ and exposes occ/less over them. Given
those two primitives, backward search narrows a suffix-array range one
pattern byte at a time, from the pattern's right end to its left:

	less  <- C[a]
	l     <- less + occ(l-1, a)
	r     <- less + occ(r, a) - 1

core.Occ treats r == -1 as the count 0 rather than requiring every caller
to special-case it, which is what both backward search's l == 0 case and
BiInterval's backward_ext bi.Lower == 0 case need.

# Position recovery

An Interval borrows from the Index that produced it to turn a suffix-array
range into text positions, via whichever PositionLocator the Index was
built with: explicit (a full suffix array, sliced directly) or sampled (a
periodic suffix-array sample plus an LF-mapping walk-back).
*/
package fmindex

import (
	"github.com/polyseq/fmindex/alphabet"
	"github.com/polyseq/fmindex/bwt"
)

// core owns Less and Occ and answers occ/less/len queries against them.
// It has no notion of position recovery; Index pairs it with a
// PositionLocator to form a complete FM-Index.
type core struct {
	less bwt.Less
	occ  bwt.Occ
}

func newCore(bwtBytes []byte, k int, alpha *alphabet.Alphabet) (core, error) {
	less, err := bwt.NewLess(bwtBytes, alpha)
	if err != nil {
		return core{}, err
	}
	occ, err := bwt.NewOcc(bwtBytes, k, alpha)
	if err != nil {
		return core{}, err
	}
	return core{less: less, occ: occ}, nil
}

// Occ returns the number of occurrences of a in bwt[0:r] inclusive.
// Occ(-1, a) is defined as 0, covering both backward search's l == 0 case
// and BiInterval.backward_ext's bi.Lower == 0 case without a separate
// guard at each call site.
func (c core) Occ(r int, a byte) int {
	if r < 0 {
		return 0
	}
	return c.occ.Get(r+1, a)
}

// Less returns C[a]: the number of BWT bytes strictly less than a.
func (c core) Less(a byte) int {
	return c.less.Get(a)
}

// LessNext returns C[a+1].
func (c core) LessNext(a byte) int {
	return c.less.GetNext(a)
}

// Len returns the length of the indexed BWT (the indexed text, sentinels
// included).
func (c core) Len() int {
	return c.occ.Len()
}

// bwtAt returns the byte at position i of the indexed BWT.
func (c core) bwtAt(i int) byte {
	return c.occ.At(i)
}

// PositionLocator materializes the text positions covered by a
// suffix-array range [lower, upper).
type PositionLocator interface {
	Positions(lower, upper int) []int
}

// explicitLocator answers Positions with a direct slice of a full,
// caller-owned suffix array. Its lifetime must not exceed that array's.
type explicitLocator struct {
	sa []int
}

func (e explicitLocator) Positions(lower, upper int) []int {
	positions := make([]int, upper-lower)
	copy(positions, e.sa[lower:upper])
	return positions
}

// sampledLocator answers Positions by walking the LF mapping backward from
// each row until it lands on a sampled suffix-array entry, every s rows.
type sampledLocator struct {
	core   core
	sample []int
	s      int
}

// position reconstructs the text position of suffix-array row pos by
// repeated LF-mapping until a sampled row is reached. Each LF step moves
// one text position to the left, so the result is the sampled position plus
// the number of steps walked, taken modulo the text length for a walk that
// wraps past the sentinel.
func (s sampledLocator) position(pos int) int {
	steps := 0
	for pos%s.s != 0 {
		c := s.core.bwtAt(pos)
		pos = s.core.Less(c) + s.core.Occ(pos-1, c)
		steps++
	}
	return (s.sample[pos/s.s] + steps) % s.core.Len()
}

func (s sampledLocator) Positions(lower, upper int) []int {
	positions := make([]int, 0, upper-lower)
	for i := lower; i < upper; i++ {
		positions = append(positions, s.position(i))
	}
	return positions
}

// Interval is a half-open suffix-array range, plus a back-reference to the
// Index that produced it so Occ can materialize text positions.
type Interval struct {
	Lower, Upper int
	index        *Index
}

// Occ returns the text positions covered by this interval. Order is
// deterministic for a given index and interval but otherwise unspecified.
func (iv Interval) Occ() []int {
	if iv.index == nil || iv.Upper <= iv.Lower {
		return nil
	}
	return iv.index.Positions(iv.Lower, iv.Upper)
}

// Len returns the number of suffix-array rows spanned by the interval.
func (iv Interval) Len() int {
	if iv.Upper <= iv.Lower {
		return 0
	}
	return iv.Upper - iv.Lower
}

// Index is an FM-Index: a core (Less + Occ over a BWT) paired with a
// PositionLocator. Construct one with NewExplicit or NewSampled.
type Index struct {
	core    core
	locator PositionLocator
}

// NewExplicit builds an Index over bwtBytes whose position recovery reads
// directly from sa, a full suffix array supplied (and owned) by the
// caller. sa's lifetime must outlive the returned Index.
func NewExplicit(bwtBytes []byte, k int, alpha *alphabet.Alphabet, sa []int) (*Index, error) {
	c, err := newCore(bwtBytes, k, alpha)
	if err != nil {
		return nil, err
	}
	return &Index{core: c, locator: explicitLocator{sa: sa}}, nil
}

// NewSampled builds an Index over bwtBytes that retains only every s-th
// entry of sa and reconstructs the rest on demand via LF-mapping
// walk-back. sa may be discarded by the caller after this call returns.
func NewSampled(bwtBytes []byte, k int, alpha *alphabet.Alphabet, sa []int, s int) (*Index, error) {
	c, err := newCore(bwtBytes, k, alpha)
	if err != nil {
		return nil, err
	}
	sample := make([]int, 0, (len(sa)+s-1)/s)
	for i := 0; i < len(sa); i += s {
		sample = append(sample, sa[i])
	}
	return &Index{core: c, locator: sampledLocator{core: c, sample: sample, s: s}}, nil
}

// Positions returns the text positions covered by the suffix-array range
// [lower, upper), via this Index's PositionLocator.
func (ix *Index) Positions(lower, upper int) []int {
	return ix.locator.Positions(lower, upper)
}

// BackwardSearch returns the suffix-array interval of exact occurrences of
// pattern, reading pattern from right to left. An empty result has
// Upper == Lower.
func (ix *Index) BackwardSearch(pattern []byte) Interval {
	l, r := backwardSearch(ix.core, pattern)
	return Interval{Lower: l, Upper: r, index: ix}
}

// backwardSearch implements the generic backward-search loop shared by
// every FM-Index flavor: it only depends on core's occ/less, not on how
// positions are recovered afterward.
func backwardSearch(c core, pattern []byte) (lower, upper int) {
	n := c.Len()
	l, r := 0, n-1
	for i := len(pattern) - 1; i >= 0; i-- {
		if l > r {
			return l, l
		}
		a := pattern[i]
		less := c.Less(a)
		l = less + c.Occ(l-1, a)
		r = less + c.Occ(r, a) - 1
	}
	if l > r {
		return l, l
	}
	return l, r + 1
}
