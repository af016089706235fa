package errors

import (
	"strings"
	"testing"
)

func TestValidateChannel(t *testing.T) {
	tests := []struct {
		value int
		ok    bool
	}{
		{value: 0, ok: true},
		{value: 128, ok: true},
		{value: 255, ok: true},
		{value: -1, ok: false},
		{value: 256, ok: false},
		{value: 1000, ok: false},
	}

	for _, tt := range tests {
		err := ValidateChannel("red", tt.value)
		if tt.ok && err != nil {
			t.Errorf("ValidateChannel(%d) = %v, want nil", tt.value, err)
		}
		if !tt.ok {
			if err == nil {
				t.Errorf("ValidateChannel(%d) = nil, want error", tt.value)
				continue
			}
			if !Is(err, ErrCodeOutOfRange) {
				t.Errorf("ValidateChannel(%d) code = %v, want OUT_OF_RANGE", tt.value, GetCode(err))
			}
		}
	}
}

func TestValidateDepth(t *testing.T) {
	if err := ValidateDepth(0); err != nil {
		t.Errorf("ValidateDepth(0) = %v, want nil", err)
	}
	if err := ValidateDepth(48); err != nil {
		t.Errorf("ValidateDepth(48) = %v, want nil", err)
	}
	if err := ValidateDepth(-1); !Is(err, ErrCodeOutOfRange) {
		t.Errorf("ValidateDepth(-1) = %v, want OUT_OF_RANGE", err)
	}
}

func TestParseChannel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
		code  Code
	}{
		{name: "plain", input: "128", want: 128},
		{name: "whitespace trimmed", input: " 42 ", want: 42},
		{name: "zero", input: "0", want: 0},
		{name: "not a number", input: "abc", code: ErrCodeInvalidInput},
		{name: "empty", input: "", code: ErrCodeInvalidInput},
		{name: "float", input: "1.5", code: ErrCodeInvalidInput},
		{name: "out of range", input: "300", code: ErrCodeOutOfRange},
		{name: "negative", input: "-1", code: ErrCodeOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseChannel("red", tt.input)
			if tt.code != "" {
				if err == nil {
					t.Fatalf("ParseChannel(%q) = %d, want error", tt.input, got)
				}
				if !Is(err, tt.code) {
					t.Errorf("ParseChannel(%q) code = %v, want %v", tt.input, GetCode(err), tt.code)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseChannel(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseChannel(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseColorTriple(t *testing.T) {
	r, g, b, err := ParseColorTriple("241, 219, 29")
	if err != nil {
		t.Fatalf("ParseColorTriple: %v", err)
	}
	if r != 241 || g != 219 || b != 29 {
		t.Errorf("ParseColorTriple = (%d, %d, %d), want (241, 219, 29)", r, g, b)
	}

	bad := []string{"", "1,2", "1,2,3,4", "a,b,c", "256,0,0", "0,-1,0"}
	for _, s := range bad {
		if _, _, _, err := ParseColorTriple(s); err == nil {
			t.Errorf("ParseColorTriple(%q) succeeded, want error", s)
		}
	}
}

func TestValidatePresetName(t *testing.T) {
	if err := ValidatePresetName("sunset"); err != nil {
		t.Errorf("ValidatePresetName(sunset) = %v, want nil", err)
	}
	if err := ValidatePresetName("  "); !Is(err, ErrCodeInvalidInput) {
		t.Errorf("blank name: %v, want INVALID_INPUT", err)
	}
	if err := ValidatePresetName(strings.Repeat("x", 65)); !Is(err, ErrCodeInvalidInput) {
		t.Errorf("long name: %v, want INVALID_INPUT", err)
	}
}
