package dye_test

import (
	"fmt"

	"github.com/tintlab/dyeseq/pkg/dye"
)

func ExampleApply() {
	// Apply a red dye to the identity mask with the standard steps.
	m := dye.Apply(dye.Identity, dye.Red, 32, 16)
	fmt.Println("Mask:", m)

	// A second red clamps at the channel ceiling.
	m = dye.Apply(m, dye.Red, 32, 16)
	fmt.Println("Mask:", m)
	// Output:
	// Mask: (255, 239, 239)
	// Mask: (255, 223, 223)
}

func ExampleProject() {
	base := dye.Color{R: 241, G: 219, B: 29}

	// One black dye darkens every channel of the mask.
	m := dye.Apply(dye.Identity, dye.Black, 32, 16)
	fmt.Println("Color:", dye.Project(base, m))
	// Output:
	// Color: (211, 192, 25)
}

func ExampleDistance() {
	a := dye.Color{R: 241, G: 219, B: 29}
	b := dye.Color{R: 255}
	fmt.Println("Distance:", dye.Distance(a, b))
	// Output:
	// Distance: 262
}
