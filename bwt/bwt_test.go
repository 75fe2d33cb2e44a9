package bwt_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/polyseq/fmindex/alphabet"
	"github.com/polyseq/fmindex/bwt"
	"golang.org/x/exp/slices"
)

func TestSuffixArray_banana(t *testing.T) {
	text := []byte("banana$")
	sa := bwt.SuffixArray(text)
	want := []int{6, 5, 3, 1, 0, 4, 2}
	if !slices.Equal(sa, want) {
		t.Fatalf("SuffixArray(%q) = %v, want %v", text, sa, want)
	}
}

func TestBuild_banana(t *testing.T) {
	text := []byte("banana$")
	sa := bwt.SuffixArray(text)
	got := bwt.Build(text, sa)
	want := []byte("annb$aa")
	if string(got) != string(want) {
		t.Fatalf("Build(%q) = %q, want %q", text, got, want)
	}
}

func TestLess_banana(t *testing.T) {
	text := []byte("banana$")
	bwtBytes := bwt.Build(text, bwt.SuffixArray(text))
	alpha := alphabet.New('$', 'a', 'b', 'n')

	less, err := bwt.NewLess(bwtBytes, alpha)
	if err != nil {
		t.Fatal(err)
	}

	// first column, sorted: $ a a a b n n -> $ starts at 0, a at 1, b at 4, n at 5.
	testCases := []struct {
		symbol byte
		want   int
	}{
		{'$', 0}, {'a', 1}, {'b', 4}, {'n', 5},
	}
	for _, tc := range testCases {
		if got := less.Get(tc.symbol); got != tc.want {
			t.Errorf("Less.Get(%q) = %d, want %d", tc.symbol, got, tc.want)
		}
	}
}

func TestLess_rejectsByteOutsideAlphabet(t *testing.T) {
	bwtBytes := []byte("annb$aa")
	_, err := bwt.NewLess(bwtBytes, alphabet.New('a', 'n', '$'))
	if err == nil {
		t.Fatal("expected an error building Less over a BWT containing a byte outside the alphabet")
	}
}

func TestOcc_banana(t *testing.T) {
	bwtBytes := []byte("annb$aa") // BWT of "banana$"
	alpha := alphabet.New('$', 'a', 'b', 'n')

	occ, err := bwt.NewOcc(bwtBytes, 4, alpha)
	if err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		r      int
		symbol byte
		want   int
	}{
		{0, 'a', 0},
		{1, 'a', 1},
		{2, 'n', 1},
		{3, 'n', 2},
		{7, 'a', 3},
		{7, 'n', 2},
		{7, 'b', 1},
		{7, '$', 1},
	}
	for _, tc := range testCases {
		if got := occ.Get(tc.r, tc.symbol); got != tc.want {
			t.Errorf("Occ.Get(%d, %q) = %d, want %d", tc.r, tc.symbol, got, tc.want)
		}
	}

	if occ.Len() != len(bwtBytes) {
		t.Errorf("Occ.Len() = %d, want %d", occ.Len(), len(bwtBytes))
	}
	for i, want := range bwtBytes {
		if got := occ.At(i); got != want {
			t.Errorf("Occ.At(%d) = %q, want %q", i, got, want)
		}
	}
}

// lfSearch reproduces the backward-search loop described in this package's
// doc comment directly against Less and Occ, as a regression check that the
// two collaborators compose the way fmindex.BackwardSearch depends on.
func lfSearch(less bwt.Less, occ bwt.Occ, pattern string) (start, end int) {
	start, end = 0, occ.Len()
	for i := len(pattern) - 1; i >= 0; i-- {
		if start >= end {
			return 0, 0
		}
		c := pattern[i]
		start = less.Get(c) + occ.Get(start, c)
		end = less.Get(c) + occ.Get(end, c)
	}
	return start, end
}

func TestLessAndOcc_backwardSearch(t *testing.T) {
	base := "thequickbrownfoxjumpsoverthelazydogwithanovertfrownafterfumblingitsparallelogramshapedbananagramallarounddowntown"
	text := []byte(strings.Repeat(base, 3) + "$")

	sa := bwt.SuffixArray(text)
	bwtBytes := bwt.Build(text, sa)

	distinct := make(map[byte]bool)
	for _, b := range bwtBytes {
		distinct[b] = true
	}
	var symbols []byte
	for b := range distinct {
		symbols = append(symbols, b)
	}
	alpha := alphabet.New(symbols...)

	less, err := bwt.NewLess(bwtBytes, alpha)
	if err != nil {
		t.Fatal(err)
	}
	occ, err := bwt.NewOcc(bwtBytes, 4, alpha)
	if err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		pattern string
		count   int
	}{
		{"uick", 3},
		{"the", 6},
		{"over", 6},
		{"own", 12},
		{"ana", 6},
		{"an", 9},
		{"na", 9},
		{"rown", 6},
		{"townthe", 2},
		{"zzz", 0},
	}
	for _, tc := range testCases {
		start, end := lfSearch(less, occ, tc.pattern)
		if got := end - start; got != tc.count {
			t.Errorf("count(%q) = %d, want %d", tc.pattern, got, tc.count)
		}
	}

	offsets, err := occurrencesOf(sa, less, occ, "uick")
	if err != nil {
		t.Fatal(err)
	}
	sort.Ints(offsets)
	wantOffsets := []int{4, 117, 230}
	if !slices.Equal(offsets, wantOffsets) {
		t.Errorf("offsets(%q) = %v, want %v", "uick", offsets, wantOffsets)
	}
}

func occurrencesOf(sa []int, less bwt.Less, occ bwt.Occ, pattern string) ([]int, error) {
	start, end := lfSearch(less, occ, pattern)
	offsets := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		offsets = append(offsets, sa[i])
	}
	return offsets, nil
}
