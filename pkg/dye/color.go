package dye

import (
	"fmt"
	"math"
)

// Color is an RGB triple with each channel in [0, 255].
// The uint8 fields make the channel bounds a type-level invariant:
// a Color can never hold an out-of-range channel. Color is an
// immutable value type - operations return new values.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Mask is a per-channel multiplicative factor in [0, 255] representing
// the accumulated effect of applied dyes. 255 means full transmission
// (no tint), 0 means the channel is fully blocked. Like Color, Mask is
// an immutable value type.
type Mask struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Identity is the starting mask: full transmission on every channel.
// Projecting any base color through Identity returns the base color
// unchanged.
var Identity = Mask{R: 255, G: 255, B: 255}

// String returns the color as "(r, g, b)".
func (c Color) String() string { return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B) }

// Hex returns the color as a "#rrggbb" hex string.
func (c Color) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

// String returns the mask as "(r, g, b)".
func (m Mask) String() string { return fmt.Sprintf("(%d, %d, %d)", m.R, m.G, m.B) }

// clamp forces v into [0, 255]. Applied immediately after every
// arithmetic step so intermediate values never escape channel bounds.
func clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Project applies a mask to a base color and returns the observable
// color. Each channel is round(base*mask/255.0), using round-half-away-
// from-zero, then clamped. With mask 255 the channel passes through
// unchanged; with mask 0 it is fully blocked.
func Project(base Color, m Mask) Color {
	return Color{
		R: clamp(int(math.Round(float64(base.R) * float64(m.R) / 255.0))),
		G: clamp(int(math.Round(float64(base.G) * float64(m.G) / 255.0))),
		B: clamp(int(math.Round(float64(base.B) * float64(m.B) / 255.0))),
	}
}

// Distance returns the Manhattan (L1) distance between two colors:
// the sum of absolute per-channel differences. The result is always
// >= 0 and is 0 iff the colors are channel-wise identical.
func Distance(a, b Color) int {
	return absDiff(a.R, b.R) + absDiff(a.G, b.G) + absDiff(a.B, b.B)
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
