package errors

import (
	"strconv"
	"strings"
)

// ValidateChannel validates a single color channel value.
// Channels must lie in [0, 255]; anything else is an OUT_OF_RANGE error.
// Validation happens at the boundary, before values are narrowed to
// uint8 - a silent truncation would hide the caller's mistake.
func ValidateChannel(name string, v int) error {
	if v < 0 || v > 255 {
		return New(ErrCodeOutOfRange, "%s channel %d outside [0, 255]", name, v)
	}
	return nil
}

// ValidateColor validates all three channels of an r,g,b triple.
func ValidateColor(r, g, b int) error {
	if err := ValidateChannel("red", r); err != nil {
		return err
	}
	if err := ValidateChannel("green", g); err != nil {
		return err
	}
	return ValidateChannel("blue", b)
}

// ValidateDepth validates a search depth bound.
// The bound must be non-negative; a bound of 0 is legal and means only
// the start state is evaluated.
func ValidateDepth(depth int) error {
	if depth < 0 {
		return New(ErrCodeOutOfRange, "depth bound %d must be non-negative", depth)
	}
	return nil
}

// ParseChannel parses a single channel from its string form.
// Malformed input fails with INVALID_INPUT rather than defaulting to
// zero - swallowing the parse error was a correctness bug in an earlier
// incarnation of this tool.
func ParseChannel(name, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, Wrap(ErrCodeInvalidInput, err, "%s channel %q is not an integer", name, s)
	}
	if err := ValidateChannel(name, v); err != nil {
		return 0, err
	}
	return v, nil
}

// ParseColorTriple parses an "R,G,B" string into validated channels.
// Each component must be an integer in [0, 255].
func ParseColorTriple(s string) (r, g, b int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, 0, 0, New(ErrCodeInvalidInput, "color %q must have the form R,G,B", s)
	}
	if r, err = ParseChannel("red", parts[0]); err != nil {
		return 0, 0, 0, err
	}
	if g, err = ParseChannel("green", parts[1]); err != nil {
		return 0, 0, 0, err
	}
	if b, err = ParseChannel("blue", parts[2]); err != nil {
		return 0, 0, 0, err
	}
	return r, g, b, nil
}

// ValidatePresetName validates a preset name.
// Names must be non-empty after trimming and reasonably short.
func ValidatePresetName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return New(ErrCodeInvalidInput, "preset name cannot be empty")
	}
	if len(trimmed) > 64 {
		return New(ErrCodeInvalidInput, "preset name too long (max 64 characters)")
	}
	return nil
}
