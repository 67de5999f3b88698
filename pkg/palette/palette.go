package palette

import (
	"github.com/goliatone/go-palette/pkg/color"
)

// User-facing outcomes of the generate action. No other messages are emitted.
const (
	MessageSuccess        = "Color palette generated successfully!"
	MessageInvalidPrimary = "Please set a valid primary color first (e.g., #4361ee)"

	// ExamplePrimary is the sample value quoted in MessageInvalidPrimary.
	ExamplePrimary = "#4361ee"
)

// Transform derives one colour from the primary colour. Transforms must be
// pure.
type Transform func(primary color.Color) color.Color

// Request is the primary value read at the moment generation fires.
type Request struct {
	Primary string
}

// Result holds the primary colour and the two derived colours.
type Result struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
}

// Tokens returns the palette keyed by role, in canonical string form.
func (r Result) Tokens() map[string]string {
	return map[string]string{
		"primary":   r.Primary.String(),
		"secondary": r.Secondary.String(),
		"accent":    r.Accent.String(),
	}
}

// Complementary inverts every channel (255 - v). It is a literal channel
// inversion, not a hue rotation.
func Complementary(primary color.Color) color.Color {
	return color.Color{
		R: 255 - primary.R,
		G: 255 - primary.G,
		B: 255 - primary.B,
	}
}

// WarmAccent pushes red up by 80 and pulls green and blue down by 40, each
// channel clamped independently.
func WarmAccent(primary color.Color) color.Color {
	r, g, b := primary.Channels()
	return color.RGB(min(255, r+80), max(0, g-40), max(0, b-40))
}

// Option configures a Generator.
type Option func(*Generator)

// WithSecondary swaps the secondary transform. Nil keeps the current one.
func WithSecondary(transform Transform) Option {
	return func(g *Generator) {
		if transform != nil {
			g.secondary = transform
		}
	}
}

// WithAccent swaps the accent transform. Nil keeps the current one.
func WithAccent(transform Transform) Option {
	return func(g *Generator) {
		if transform != nil {
			g.accent = transform
		}
	}
}

// Generator derives secondary and accent colours from a primary colour.
type Generator struct {
	secondary Transform
	accent    Transform
}

// NewGenerator returns a generator using Complementary and WarmAccent unless
// overridden.
func NewGenerator(options ...Option) *Generator {
	g := &Generator{
		secondary: Complementary,
		accent:    WarmAccent,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	return g
}

var defaultGenerator = NewGenerator()

// Generate runs the default generator.
func Generate(primary string) (Result, error) {
	return defaultGenerator.Generate(primary)
}

// Validate reports whether primary is acceptable input for Generate.
func Validate(primary string) error {
	_, err := parsePrimary(primary)
	return err
}

// Generate validates primary and applies both transforms. It never returns
// a partial result.
func (g *Generator) Generate(primary string) (Result, error) {
	if g == nil {
		g = defaultGenerator
	}
	base, err := parsePrimary(primary)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Primary:   base,
		Secondary: g.secondary(base),
		Accent:    g.accent(base),
	}, nil
}

// GenerateRequest is Generate for a captured Request.
func (g *Generator) GenerateRequest(req Request) (Result, error) {
	return g.Generate(req.Primary)
}

func parsePrimary(primary string) (color.Color, error) {
	if primary == "" {
		return color.Color{}, &InvalidPrimaryColorError{Value: primary, Reason: "value is empty"}
	}
	if len(primary) != color.HexLength {
		return color.Color{}, &InvalidPrimaryColorError{Value: primary, Reason: "expected 7 characters"}
	}
	base, err := color.Parse(primary)
	if err != nil {
		return color.Color{}, &InvalidPrimaryColorError{Value: primary, Reason: "expected # followed by six hex digits"}
	}
	return base, nil
}
