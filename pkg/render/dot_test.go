package render

import (
	"strings"
	"testing"

	"github.com/tintlab/dyeseq/pkg/dye"
)

func TestSequenceDOT(t *testing.T) {
	base := dye.Color{R: 241, G: 219, B: 29}
	steps := []dye.Dye{dye.Red, dye.Black}

	dot := SequenceDOT(base, steps, 32, 16, Options{})

	if !strings.HasPrefix(dot, "digraph sequence {") {
		t.Fatalf("not a digraph: %q", dot[:30])
	}
	// Three states: start plus one per step.
	for _, node := range []string{"s0 [", "s1 [", "s2 ["} {
		if !strings.Contains(dot, node) {
			t.Errorf("missing node %q", node)
		}
	}
	if strings.Contains(dot, "s3 [") {
		t.Error("unexpected fourth node")
	}

	// Start node is filled with the untinted base color.
	if !strings.Contains(dot, `fillcolor="#f1db1d"`) {
		t.Error("start node not filled with base color")
	}
	// Edges carry the dye name and its display color.
	if !strings.Contains(dot, `s0 -> s1 [label="red", color="#ff4d4d"]`) {
		t.Error("missing red edge")
	}
	if !strings.Contains(dot, `s1 -> s2 [label="black", color="#666666"]`) {
		t.Error("missing black edge")
	}
}

func TestSequenceDOTEmptySequence(t *testing.T) {
	dot := SequenceDOT(dye.Color{R: 241, G: 219, B: 29}, nil, 32, 16, Options{})
	if !strings.Contains(dot, "s0 [") {
		t.Error("missing start node")
	}
	if strings.Contains(dot, "->") {
		t.Error("empty sequence should have no edges")
	}
}

func TestSequenceDOTDetailed(t *testing.T) {
	base := dye.Color{R: 241, G: 219, B: 29}

	plain := SequenceDOT(base, []dye.Dye{dye.Blue}, 32, 16, Options{})
	detailed := SequenceDOT(base, []dye.Dye{dye.Blue}, 32, 16, Options{Detailed: true})

	if strings.Contains(plain, "mask") {
		t.Error("plain output includes mask labels")
	}
	if !strings.Contains(detailed, "mask (239, 239, 255)") {
		t.Error("detailed output missing mask label")
	}
}

func TestContrastColor(t *testing.T) {
	tests := []struct {
		color dye.Color
		want  string
	}{
		{color: dye.Color{R: 255, G: 255, B: 255}, want: "#000000"},
		{color: dye.Color{}, want: "#ffffff"},
		{color: dye.Color{R: 241, G: 219, B: 29}, want: "#000000"},
		{color: dye.Color{R: 40, G: 40, B: 120}, want: "#ffffff"},
	}
	for _, tt := range tests {
		if got := contrastColor(tt.color); got != tt.want {
			t.Errorf("contrastColor(%v) = %s, want %s", tt.color, got, tt.want)
		}
	}
}
