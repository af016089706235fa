package search_test

import (
	"context"
	"fmt"

	"github.com/tintlab/dyeseq/pkg/dye"
	"github.com/tintlab/dyeseq/pkg/search"
)

func ExampleSearch() {
	res, err := search.Search(context.Background(), search.Params{
		Base:     dye.Color{R: 241, G: 219, B: 29},
		Target:   dye.Color{},
		Add:      32,
		Sub:      16,
		MaxDepth: 48,
	})
	if err != nil {
		panic(err)
	}

	fmt.Println("Sequence:", search.FormatRuns(res.Steps))
	fmt.Println("Distance:", res.Distance)
	// Output:
	// Sequence: 8x black
	// Distance: 0
}

func ExampleFormatRuns() {
	steps := []dye.Dye{dye.Red, dye.Red, dye.Red, dye.Black}
	fmt.Println(search.FormatRuns(steps))
	fmt.Println(search.FormatRuns(nil))
	// Output:
	// 3x red, 1x black
	// no dyes applied
}
