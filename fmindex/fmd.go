package fmindex

import (
	"fmt"

	"github.com/polyseq/fmindex/alphabet"
	"github.com/polyseq/fmindex/transform"
)

// complementOrder is the fixed iteration order backward_ext walks the
// complement alphabet in: ascending symbol order of the complement space,
// {$, A, C, G, N, T} plus their lowercase duplicates. This ordering is a
// contract the reverse-strand sub-interval layout depends on; see
// BackwardExt. Do not reorder it.
var complementOrder = []byte{'$', 'T', 'G', 'C', 'N', 'A', 't', 'g', 'c', 'n', 'a'}

// BiInterval is the paired suffix-array interval for a pattern P and its
// reverse complement: [Lower, Lower+Size) occurs for P, [LowerRev,
// LowerRev+Size) occurs for revcomp(P). It borrows from the FMDIndex that
// produced it, the same way Interval borrows from its Index.
type BiInterval struct {
	Lower, LowerRev, Size, MatchSize int
	index                            *Index
}

// Forward projects this BiInterval to the plain suffix-array interval of
// P on the forward strand.
func (bi BiInterval) Forward() Interval {
	return Interval{Lower: bi.Lower, Upper: bi.Lower + bi.Size, index: bi.index}
}

// Reverse projects this BiInterval to the plain suffix-array interval of
// revcomp(P) on the reverse strand: [LowerRev, LowerRev+Size).
func (bi BiInterval) Reverse() Interval {
	return Interval{Lower: bi.LowerRev, Upper: bi.LowerRev + bi.Size, index: bi.index}
}

// FMDIndex wraps an Index built over a DNA text shaped T1$R1$T2$R2$...,
// where each Ri is the reverse complement of Ti, and exposes the
// bi-interval algebra Supermaximal Exact Match search needs.
type FMDIndex struct {
	index *Index
}

// NewFMD wraps index as an FMDIndex after verifying every byte of its BWT
// lies in the DNA + N + sentinel alphabet. It fails rather than silently
// misindexing a non-DNA text.
func NewFMD(index *Index) (*FMDIndex, error) {
	alpha := alphabet.DNAWithN()
	alpha.Insert('$')

	n := index.core.Len()
	bwtBytes := make([]byte, n)
	for i := 0; i < n; i++ {
		bwtBytes[i] = index.core.bwtAt(i)
	}
	if !alpha.IsWord(bwtBytes) {
		return nil, fmt.Errorf("fmindex: FMD index requires a BWT over the DNA+N+$ alphabet")
	}
	return &FMDIndex{index: index}, nil
}

// InitInterval returns the BiInterval for the single-symbol pattern
// pattern[i].
func (f *FMDIndex) InitInterval(pattern []byte, i int) BiInterval {
	c := f.index.core
	a := pattern[i]
	return BiInterval{
		Lower:     c.Less(a),
		LowerRev:  c.Less(transform.Comp(a)),
		Size:      c.LessNext(a) - c.Less(a),
		MatchSize: 1,
		index:     f.index,
	}
}

// BackwardExt extends bi on the left by a, returning the BiInterval for
// a+P. The reverse-complement sub-interval is relocated within the
// parent's reverse interval by walking the complement alphabet in
// complementOrder and accumulating the sub-interval sizes seen so far.
func (f *FMDIndex) BackwardExt(bi BiInterval, a byte) BiInterval {
	c := f.index.core

	var size, o, l int
	l = bi.LowerRev
	for _, b := range complementOrder {
		l += size
		o = c.Occ(bi.Lower-1, b)
		size = c.Occ(bi.Lower+bi.Size-1, b) - o
		if b == a {
			break
		}
	}

	return BiInterval{
		Lower:     c.Less(a) + o,
		LowerRev:  l,
		Size:      size,
		MatchSize: bi.MatchSize + 1,
		index:     bi.index,
	}
}

// ForwardExt extends bi on the right by a. It is implemented by swapping
// strands, backward-extending with comp(a), and swapping back.
func (f *FMDIndex) ForwardExt(bi BiInterval, a byte) BiInterval {
	swapped := BiInterval{Lower: bi.LowerRev, LowerRev: bi.Lower, Size: bi.Size, MatchSize: bi.MatchSize, index: bi.index}
	ext := f.BackwardExt(swapped, transform.Comp(a))
	return BiInterval{Lower: ext.LowerRev, LowerRev: ext.Lower, Size: ext.Size, MatchSize: ext.MatchSize, index: ext.index}
}

// SMEMs returns the Supermaximal Exact Matches of pattern that cover
// position i: maximal substrings pattern[k:j) containing i that occur in
// the text but cannot be extended on either side without vanishing.
func (f *FMDIndex) SMEMs(pattern []byte, i int) []BiInterval {
	prev := f.growRight(pattern, i)

	var matches []BiInterval
	j := len(pattern)

	for k := i - 1; k >= -1; k-- {
		var a byte
		if k >= 0 {
			a = pattern[k]
		} else {
			a = '$'
		}

		var curr []BiInterval
		lastSize := -1
		for _, iv := range prev {
			bi := f.BackwardExt(iv, a)
			if (bi.Size == 0 || k == -1) && len(curr) == 0 && k < j {
				j = k
				matches = append(matches, iv)
			}
			if bi.Size != 0 && bi.Size != lastSize {
				lastSize = bi.Size
				curr = append(curr, bi)
			}
		}
		if len(curr) == 0 {
			break
		}
		prev = curr
	}

	return matches
}

// growRight performs SMEM phase 1: grow the interval anchored at i
// rightward for as long as it stays non-empty, recording a checkpoint
// every time the interval shrinks, then returns the checkpoints ordered
// from the largest match to the smallest.
func (f *FMDIndex) growRight(pattern []byte, i int) []BiInterval {
	interval := f.InitInterval(pattern, i)

	var curr []BiInterval
	for x := i + 1; x < len(pattern); x++ {
		fi := f.ForwardExt(interval, pattern[x])
		if fi.Size != interval.Size {
			curr = append(curr, interval)
		}
		if fi.Size == 0 {
			break
		}
		interval = fi
	}
	curr = append(curr, interval)

	for l, r := 0, len(curr)-1; l < r; l, r = l+1, r-1 {
		curr[l], curr[r] = curr[r], curr[l]
	}
	return curr
}
