package search

import (
	"fmt"
	"strings"

	"github.com/tintlab/dyeseq/pkg/dye"
)

// Run is a maximal group of consecutive identical dyes in a sequence.
type Run struct {
	Dye   dye.Dye `json:"dye"`
	Count int     `json:"count"`
}

// NoDyesApplied is the rendering of the empty sequence.
const NoDyesApplied = "no dyes applied"

// Runs run-length-encodes a sequence: consecutive identical dyes are
// collapsed into a single Run with a count. Replay order is preserved.
// Returns nil for an empty sequence.
func Runs(steps []dye.Dye) []Run {
	var runs []Run
	for _, d := range steps {
		if n := len(runs); n > 0 && runs[n-1].Dye == d {
			runs[n-1].Count++
			continue
		}
		runs = append(runs, Run{Dye: d, Count: 1})
	}
	return runs
}

// FormatRuns renders a sequence as a compact human-readable string,
// e.g. "3x red, 8x black". The empty sequence renders as the explicit
// [NoDyesApplied] marker.
func FormatRuns(steps []dye.Dye) string {
	runs := Runs(steps)
	if len(runs) == 0 {
		return NoDyesApplied
	}
	parts := make([]string, len(runs))
	for i, r := range runs {
		parts[i] = fmt.Sprintf("%dx %s", r.Count, r.Dye)
	}
	return strings.Join(parts, ", ")
}
