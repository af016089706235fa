// Package dye implements the mask transition engine: the discrete dye
// operations, their effect on a transmission mask, and the projection
// of a mask onto a base color.
//
// A dye application never mutates a mask in place - Apply returns a new
// Mask with every channel clamped back into [0, 255]. The observable
// color of a mask is derived with Project against a base color, and
// colors are compared with the Manhattan Distance.
//
// All functions in this package are pure and deterministic.
package dye

import (
	"github.com/tintlab/dyeseq/pkg/errors"
)

// Dye is one of the four discrete dye operations. The zero value is Red.
//
// The declaration order Red < Green < Blue < Black is a fixed total
// order, not an accident of iteration: search results depend on it for
// reproducible tie-breaking, so it must never be reordered.
type Dye int

const (
	// Red raises the red channel of a mask and lowers the others.
	Red Dye = iota
	// Green raises the green channel of a mask and lowers the others.
	Green
	// Blue raises the blue channel of a mask and lowers the others.
	Blue
	// Black darkens all three channels by a fixed amount.
	Black
)

// All lists every dye in the fixed enumeration order.
var All = []Dye{Red, Green, Blue, Black}

// blackDelta is the fixed per-channel delta of the black dye. Unlike
// the colored dyes it does not scale with the configured step values.
const blackDelta = -32

var dyeNames = map[Dye]string{
	Red:   "red",
	Green: "green",
	Blue:  "blue",
	Black: "black",
}

var dyesByName = map[string]Dye{
	"red":   Red,
	"green": Green,
	"blue":  Blue,
	"black": Black,
}

// String returns the lowercase dye name.
func (d Dye) String() string {
	if name, ok := dyeNames[d]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether d is one of the four known dyes.
func (d Dye) Valid() bool {
	_, ok := dyeNames[d]
	return ok
}

// MarshalText implements encoding.TextMarshaler using the dye name.
// This drives JSON encoding of sequences in the store and the API.
func (d Dye) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidDye, "unknown dye value %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Dye) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Parse converts a dye name to a Dye. Unknown names fail with an
// INVALID_DYE error; there is no fallback value.
func Parse(name string) (Dye, error) {
	if d, ok := dyesByName[name]; ok {
		return d, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidDye, "unknown dye %q (want red, green, blue or black)", name)
}

// Delta returns the per-channel mask delta for a dye. The colored dyes
// add the configured add value to their own channel and subtract sub
// from the other two. Black always subtracts 32 from every channel,
// independent of add and sub.
func Delta(d Dye, add, sub int) (dr, dg, db int) {
	switch d {
	case Red:
		return add, -sub, -sub
	case Green:
		return -sub, add, -sub
	case Blue:
		return -sub, -sub, add
	default:
		return blackDelta, blackDelta, blackDelta
	}
}

// Apply returns the mask produced by applying one dye to m. Each
// channel is shifted by the dye's delta and clamped into [0, 255].
// The input mask is not modified.
func Apply(m Mask, d Dye, add, sub int) Mask {
	dr, dg, db := Delta(d, add, sub)
	return Mask{
		R: clamp(int(m.R) + dr),
		G: clamp(int(m.G) + dg),
		B: clamp(int(m.B) + db),
	}
}
