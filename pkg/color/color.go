package color

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// HexLength is the length of a canonical colour string: '#' plus six hex
// digits.
const HexLength = 7

// ErrInvalidHex is returned when a string cannot be read as a hex colour.
var ErrInvalidHex = errors.New("color: invalid hex color")

// Color is a 24-bit RGB value. The zero value is black.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// RGB builds a Color from integer channels, clamping each into [0,255].
func RGB(r, g, b int) Color {
	return Color{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

// Parse reads a canonical "#rrggbb" string. Hex digits are case-insensitive.
// Channels are read from the fixed positions 1-2, 3-4 and 5-6.
func Parse(value string) (Color, error) {
	if len(value) != HexLength || value[0] != '#' {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, value)
	}
	r, err := parseChannel(value[1:3])
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, value)
	}
	g, err := parseChannel(value[3:5])
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, value)
	}
	b, err := parseChannel(value[5:7])
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, value)
	}
	return Color{R: r, G: g, B: b}, nil
}

// MustParse is Parse for package-level literals. It panics on bad input.
func MustParse(value string) Color {
	c, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseLoose accepts the forms stored by the admin: surrounding whitespace,
// an optional leading '#', and 3-digit shorthand ("#abc" -> "#aabbcc").
func ParseLoose(value string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	return Parse("#" + hex)
}

// Normalize trims the value and prefixes '#' when it is missing. Empty input
// stays empty. No other validation is performed.
func Normalize(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return trimmed
	}
	return "#" + trimmed
}

// String renders the canonical lower-case "#rrggbb" form.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Channels returns the three channels as ints.
func (c Color) Channels() (r, g, b int) {
	return int(c.R), int(c.G), int(c.B)
}

// RGBTriple renders "r, g, b" for use inside CSS rgba() expressions.
func (c Color) RGBTriple() string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

// Colorful converts to a go-colorful value for perceptual helpers.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Lighten moves every channel towards 255 by factor and truncates.
func (c Color) Lighten(factor float64) Color {
	shift := func(v uint8) uint8 {
		f := float64(v)
		return clampChannel(int(f + (255-f)*factor))
	}
	return Color{R: shift(c.R), G: shift(c.G), B: shift(c.B)}
}

// Darken scales every channel by (1 - factor) and truncates.
func (c Color) Darken(factor float64) Color {
	shift := func(v uint8) uint8 {
		return clampChannel(int(float64(v) * (1 - factor)))
	}
	return Color{R: shift(c.R), G: shift(c.G), B: shift(c.B)}
}

// IsLight reports whether the colour reads as light, using CIE L*.
func (c Color) IsLight() bool {
	l, _, _ := c.Colorful().Lab()
	return l > 0.6
}

var (
	darkText  = Color{R: 0x1f, G: 0x29, B: 0x37}
	lightText = Color{R: 0xff, G: 0xff, B: 0xff}
)

// ContrastText picks a text colour that stays readable on top of bg.
func ContrastText(bg Color) Color {
	if bg.IsLight() {
		return darkText
	}
	return lightText
}

func parseChannel(raw string) (uint8, error) {
	v, err := strconv.ParseUint(raw, 16, 8)
	if err != nil {
		return 0, err
	}
	return uint8(v), nil
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
