package bwt_test

import (
	"fmt"
	"log"

	"github.com/polyseq/fmindex/alphabet"
	"github.com/polyseq/fmindex/bwt"
)

func ExampleBuild() {
	text := []byte("banana$")
	sa := bwt.SuffixArray(text)
	fmt.Println(string(bwt.Build(text, sa)))
	// Output: annb$aa
}

func ExampleOcc_Get() {
	bwtBytes := []byte("annb$aa")
	alpha := alphabet.New('$', 'a', 'b', 'n')

	occ, err := bwt.NewOcc(bwtBytes, 4, alpha)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(occ.Get(7, 'a'))
	// Output: 3
}
