package dye

import (
	"encoding/json"
	"testing"

	"github.com/tintlab/dyeseq/pkg/errors"
)

func TestDelta(t *testing.T) {
	tests := []struct {
		name       string
		dye        Dye
		add, sub   int
		dr, dg, db int
	}{
		{name: "red", dye: Red, add: 32, sub: 16, dr: 32, dg: -16, db: -16},
		{name: "green", dye: Green, add: 32, sub: 16, dr: -16, dg: 32, db: -16},
		{name: "blue", dye: Blue, add: 32, sub: 16, dr: -16, dg: -16, db: 32},
		{name: "black ignores add/sub", dye: Black, add: 32, sub: 16, dr: -32, dg: -32, db: -32},
		{name: "black with other steps", dye: Black, add: 100, sub: 3, dr: -32, dg: -32, db: -32},
		{name: "red with custom steps", dye: Red, add: 10, sub: 5, dr: 10, dg: -5, db: -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dr, dg, db := Delta(tt.dye, tt.add, tt.sub)
			if dr != tt.dr || dg != tt.dg || db != tt.db {
				t.Errorf("Delta(%v, %d, %d) = (%d, %d, %d), want (%d, %d, %d)",
					tt.dye, tt.add, tt.sub, dr, dg, db, tt.dr, tt.dg, tt.db)
			}
		})
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		mask Mask
		dye  Dye
		want Mask
	}{
		{name: "red on identity", mask: Identity, dye: Red, want: Mask{R: 255, G: 239, B: 239}},
		{name: "green on identity", mask: Identity, dye: Green, want: Mask{R: 239, G: 255, B: 239}},
		{name: "blue on identity", mask: Identity, dye: Blue, want: Mask{R: 239, G: 239, B: 255}},
		{name: "black on identity", mask: Identity, dye: Black, want: Mask{R: 223, G: 223, B: 223}},
		{name: "clamps at upper bound", mask: Mask{R: 240, G: 100, B: 100}, dye: Red, want: Mask{R: 255, G: 84, B: 84}},
		{name: "clamps at lower bound", mask: Mask{R: 10, G: 10, B: 10}, dye: Black, want: Mask{R: 0, G: 0, B: 0}},
		{name: "zero mask stays clamped", mask: Mask{}, dye: Black, want: Mask{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(tt.mask, tt.dye, 32, 16)
			if got != tt.want {
				t.Errorf("Apply(%v, %v, 32, 16) = %v, want %v", tt.mask, tt.dye, got, tt.want)
			}
		})
	}
}

func TestApplyDoesNotMutate(t *testing.T) {
	m := Mask{R: 100, G: 100, B: 100}
	_ = Apply(m, Red, 32, 16)
	if m != (Mask{R: 100, G: 100, B: 100}) {
		t.Errorf("Apply mutated its input: %v", m)
	}
}

func TestParse(t *testing.T) {
	for _, d := range All {
		got, err := Parse(d.String())
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", d.String(), err)
		}
		if got != d {
			t.Errorf("Parse(%q) = %v, want %v", d.String(), got, d)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	for _, name := range []string{"", "purple", "RED", "Black "} {
		_, err := Parse(name)
		if err == nil {
			t.Errorf("Parse(%q) succeeded, want error", name)
			continue
		}
		if !errors.Is(err, errors.ErrCodeInvalidDye) {
			t.Errorf("Parse(%q) error code = %v, want INVALID_DYE", name, errors.GetCode(err))
		}
	}
}

func TestAllOrder(t *testing.T) {
	want := []Dye{Red, Green, Blue, Black}
	if len(All) != len(want) {
		t.Fatalf("len(All) = %d, want %d", len(All), len(want))
	}
	for i, d := range want {
		if All[i] != d {
			t.Errorf("All[%d] = %v, want %v", i, All[i], d)
		}
	}
}

func TestDyeJSON(t *testing.T) {
	data, err := json.Marshal([]Dye{Red, Black, Black})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `["red","black","black"]`
	if string(data) != want {
		t.Errorf("marshal = %s, want %s", data, want)
	}

	var steps []Dye
	if err := json.Unmarshal(data, &steps); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(steps) != 3 || steps[0] != Red || steps[1] != Black || steps[2] != Black {
		t.Errorf("unmarshal = %v, want [red black black]", steps)
	}
}

func TestDyeMarshalInvalid(t *testing.T) {
	if _, err := Dye(42).MarshalText(); err == nil {
		t.Error("MarshalText on invalid dye succeeded, want error")
	}
}
