package succinct

import "fmt"

const byteBits = 8

// WaveletTree indexes a byte sequence as a wavelet matrix: one bit-plane
// per bit of the byte, most significant first, each bit-plane stably
// partitioned into its zeros followed by its ones before the next plane is
// built. Access and Rank both walk the byteBits planes top to bottom,
// narrowing a position (Access) or a [pos, end) range (Rank) one bit at a
// time; neither needs the per-symbol paths or parent pointers a recursive,
// per-node wavelet tree would.
//
// This is the structure backing Occ: Occ.Get(r, a) is a single
// WaveletTree.Rank(a, r) call against the BWT bytes.
type WaveletTree struct {
	levels [byteBits]waveletLevel
	length int
}

type waveletLevel struct {
	bits      RankIndex
	zeroCount int
}

// NewWaveletTree builds a WaveletTree over data. wordsPerBlock is forwarded
// to every level's RankIndex; see NewRankIndex for what it trades off.
func NewWaveletTree(data []byte, wordsPerBlock int) (WaveletTree, error) {
	if len(data) == 0 {
		return WaveletTree{}, fmt.Errorf("succinct: cannot build a wavelet tree over an empty sequence")
	}

	seq := append([]byte(nil), data...)
	var levels [byteBits]waveletLevel
	for level := 0; level < byteBits; level++ {
		bitPos := uint(byteBits - 1 - level)
		bv := NewBitVector(len(seq))
		zeros := make([]byte, 0, len(seq))
		ones := make([]byte, 0, len(seq))
		for i, b := range seq {
			if b&(1<<bitPos) != 0 {
				bv.SetBit(i, true)
				ones = append(ones, b)
			} else {
				zeros = append(zeros, b)
			}
		}
		levels[level] = waveletLevel{bits: NewRankIndex(bv, wordsPerBlock), zeroCount: len(zeros)}
		seq = append(zeros, ones...)
	}

	return WaveletTree{levels: levels, length: len(data)}, nil
}

// Access returns the ith byte of the original sequence.
func (wt WaveletTree) Access(i int) byte {
	pos := i
	var code byte
	for _, lv := range wt.levels {
		bit := lv.bits.Bit(pos)
		code <<= 1
		if bit {
			code |= 1
			pos = lv.zeroCount + lv.bits.Rank(true, pos)
		} else {
			pos = lv.bits.Rank(false, pos)
		}
	}
	return code
}

// Rank returns the number of occurrences of char in data[0:i).
func (wt WaveletTree) Rank(char byte, i int) int {
	pos, end := 0, i
	for level, lv := range wt.levels {
		bitPos := uint(byteBits - 1 - level)
		if char&(1<<bitPos) != 0 {
			pos = lv.zeroCount + lv.bits.Rank(true, pos)
			end = lv.zeroCount + lv.bits.Rank(true, end)
		} else {
			pos = lv.bits.Rank(false, pos)
			end = lv.bits.Rank(false, end)
		}
	}
	return end - pos
}

// Len returns the length of the indexed sequence.
func (wt WaveletTree) Len() int {
	return wt.length
}
