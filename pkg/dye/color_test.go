package dye

import "testing"

func TestProject(t *testing.T) {
	base := Color{R: 241, G: 219, B: 29}

	tests := []struct {
		name string
		mask Mask
		want Color
	}{
		{name: "identity passes through", mask: Identity, want: base},
		{name: "zero mask blocks all", mask: Mask{}, want: Color{}},
		{name: "one red step", mask: Mask{R: 255, G: 239, B: 239}, want: Color{R: 241, G: 205, B: 27}},
		{name: "one black step", mask: Mask{R: 223, G: 223, B: 223}, want: Color{R: 211, G: 192, B: 25}},
		{name: "rounds half away from zero", mask: Mask{R: 191, G: 191, B: 207}, want: Color{R: 181, G: 164, B: 24}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(base, tt.mask)
			if got != tt.want {
				t.Errorf("Project(%v, %v) = %v, want %v", base, tt.mask, got, tt.want)
			}
		})
	}
}

func TestProjectRounding(t *testing.T) {
	// 100 * 204 / 255 = 80.0 exactly; 100 * 203 / 255 = 79.6 rounds up;
	// 100 * 201 / 255 = 78.8 rounds up; 100 * 200 / 255 = 78.4 rounds down.
	base := Color{R: 100, G: 100, B: 100}
	tests := []struct {
		mask uint8
		want uint8
	}{
		{mask: 204, want: 80},
		{mask: 203, want: 80},
		{mask: 201, want: 79},
		{mask: 200, want: 78},
	}
	for _, tt := range tests {
		got := Project(base, Mask{R: tt.mask, G: tt.mask, B: tt.mask})
		if got.R != tt.want {
			t.Errorf("Project(100, mask %d).R = %d, want %d", tt.mask, got.R, tt.want)
		}
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Color
		want int
	}{
		{name: "identical", a: Color{R: 10, G: 20, B: 30}, b: Color{R: 10, G: 20, B: 30}, want: 0},
		{name: "symmetric", a: Color{R: 255}, b: Color{B: 255}, want: 510},
		{name: "base to red", a: Color{R: 241, G: 219, B: 29}, b: Color{R: 255}, want: 262},
		{name: "max", a: Color{}, b: Color{R: 255, G: 255, B: 255}, want: 765},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); got != tt.want {
				t.Errorf("Distance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := Distance(tt.b, tt.a); got != tt.want {
				t.Errorf("Distance(%v, %v) = %d, want %d", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{color: Color{}, want: "#000000"},
		{color: Color{R: 255, G: 255, B: 255}, want: "#ffffff"},
		{color: Color{R: 241, G: 219, B: 29}, want: "#f1db1d"},
	}
	for _, tt := range tests {
		if got := tt.color.Hex(); got != tt.want {
			t.Errorf("%v.Hex() = %q, want %q", tt.color, got, tt.want)
		}
	}
}
