// Package render turns a dye sequence into a visual replay: a chain of
// mask states from the identity mask to the final result, one node per
// state, filled with the color the mask produces on the base pixel.
//
// The chain is emitted as Graphviz DOT and can be rendered to SVG with
// [SVG].
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/tintlab/dyeseq/pkg/dye"
)

// edgeColors are the display colors for dye edges.
var edgeColors = map[dye.Dye]string{
	dye.Red:   "#ff4d4d",
	dye.Green: "#4dff4d",
	dye.Blue:  "#4da6ff",
	dye.Black: "#666666",
}

// Options configures sequence rendering.
type Options struct {
	// Detailed includes the mask triple in every node label.
	// When false, nodes show only the step number and projected color.
	Detailed bool
}

// SequenceDOT converts a dye sequence to Graphviz DOT format.
// The sequence is replayed from the identity mask with the given step
// constants; each node is filled with the projected color of its state
// and each edge is labeled with the dye that caused the transition.
func SequenceDOT(base dye.Color, steps []dye.Dye, add, sub int, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph sequence {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=12, margin=\"0.15,0.1\"];\n")
	buf.WriteString("\n")

	mask := dye.Identity
	writeState(&buf, 0, "start", base, mask, opts)
	for i, d := range steps {
		mask = dye.Apply(mask, d, add, sub)
		writeState(&buf, i+1, d.String(), base, mask, opts)
	}

	buf.WriteString("\n")
	for i, d := range steps {
		fmt.Fprintf(&buf, "  s%d -> s%d [label=%q, color=%q];\n", i, i+1, d.String(), edgeColors[d])
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeState(buf *bytes.Buffer, idx int, name string, base dye.Color, mask dye.Mask, opts Options) {
	color := dye.Project(base, mask)
	label := fmt.Sprintf("%d. %s\n%s", idx, name, color)
	if opts.Detailed {
		label += fmt.Sprintf("\nmask %s", mask)
	}
	fmt.Fprintf(buf, "  s%d [label=%q, fillcolor=%q, fontcolor=%q];\n",
		idx, label, color.Hex(), contrastColor(color))
}

// contrastColor picks black or white text for readability on a fill.
// Uses the integer Rec. 601 luma approximation.
func contrastColor(c dye.Color) string {
	luma := (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
	if luma > 140 {
		return "#000000"
	}
	return "#ffffff"
}

// SVG renders a DOT graph to SVG using Graphviz.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
