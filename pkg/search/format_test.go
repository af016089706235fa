package search

import (
	"testing"

	"github.com/tintlab/dyeseq/pkg/dye"
)

func TestRuns(t *testing.T) {
	steps := []dye.Dye{dye.Red, dye.Red, dye.Black, dye.Red}
	runs := Runs(steps)

	want := []Run{
		{Dye: dye.Red, Count: 2},
		{Dye: dye.Black, Count: 1},
		{Dye: dye.Red, Count: 1},
	}
	if len(runs) != len(want) {
		t.Fatalf("len(runs) = %d, want %d", len(runs), len(want))
	}
	for i, r := range want {
		if runs[i] != r {
			t.Errorf("runs[%d] = %+v, want %+v", i, runs[i], r)
		}
	}
}

func TestRunsEmpty(t *testing.T) {
	if runs := Runs(nil); runs != nil {
		t.Errorf("Runs(nil) = %v, want nil", runs)
	}
}

func TestFormatRuns(t *testing.T) {
	tests := []struct {
		name  string
		steps []dye.Dye
		want  string
	}{
		{name: "empty", steps: nil, want: NoDyesApplied},
		{name: "single", steps: []dye.Dye{dye.Blue}, want: "1x blue"},
		{
			name:  "collapsed",
			steps: []dye.Dye{dye.Red, dye.Red, dye.Red, dye.Black, dye.Black},
			want:  "3x red, 2x black",
		},
		{
			name:  "order preserved",
			steps: []dye.Dye{dye.Black, dye.Red, dye.Black},
			want:  "1x black, 1x red, 1x black",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRuns(tt.steps); got != tt.want {
				t.Errorf("FormatRuns(%v) = %q, want %q", tt.steps, got, tt.want)
			}
		})
	}
}
