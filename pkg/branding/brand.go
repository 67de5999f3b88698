package branding

import (
	"strings"

	"github.com/goliatone/go-palette/pkg/color"
)

// VariationFactor is the lighten/darken step used for the -light and -dark
// variants.
const VariationFactor = 0.15

// Colour names, in the order they are presented.
const (
	NamePrimary   = "primary"
	NameSecondary = "secondary"
	NameAccent    = "accent"
	NameLight     = "light"
	NameDark      = "dark"
	NameText      = "text"
	NameSuccess   = "success"
	NameWarning   = "warning"
	NameError     = "error"
	NameInfo      = "info"
)

// Names lists every brand colour.
var Names = []string{
	NamePrimary, NameSecondary, NameAccent,
	NameLight, NameDark, NameText,
	NameSuccess, NameWarning, NameError, NameInfo,
}

var defaults = map[string]color.Color{
	NamePrimary:   color.MustParse("#4361ee"),
	NameSecondary: color.MustParse("#3a0ca3"),
	NameAccent:    color.MustParse("#f59e0b"),
	NameLight:     color.MustParse("#eff6ff"),
	NameDark:      color.MustParse("#1e3a8a"),
	NameText:      color.MustParse("#1f2937"),
	NameSuccess:   color.MustParse("#10b981"),
	NameWarning:   color.MustParse("#f59e0b"),
	NameError:     color.MustParse("#ef4444"),
	NameInfo:      color.MustParse("#3b82f6"),
}

// Brand holds the ten tenant colours.
type Brand struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Light     color.Color
	Dark      color.Color
	Text      color.Color
	Success   color.Color
	Warning   color.Color
	Error     color.Color
	Info      color.Color
}

// Default returns the stock brand.
func Default() Brand {
	return Brand{
		Primary:   defaults[NamePrimary],
		Secondary: defaults[NameSecondary],
		Accent:    defaults[NameAccent],
		Light:     defaults[NameLight],
		Dark:      defaults[NameDark],
		Text:      defaults[NameText],
		Success:   defaults[NameSuccess],
		Warning:   defaults[NameWarning],
		Error:     defaults[NameError],
		Info:      defaults[NameInfo],
	}
}

// FromValues builds a brand from form values. Keys may be the bare colour
// name ("primary") or the field name ("primary_color"); the field name wins.
// Values are parsed loosely. Empty or unparsable values keep the default.
func FromValues(values map[string]string) Brand {
	brand := Default()
	for _, name := range Names {
		raw, ok := values[name+"_color"]
		if !ok || strings.TrimSpace(raw) == "" {
			raw = values[name]
		}
		if strings.TrimSpace(raw) == "" {
			continue
		}
		parsed, err := color.ParseLoose(raw)
		if err != nil {
			continue
		}
		*brand.slot(name) = parsed
	}
	return brand
}

// Get returns the colour called name.
func (b Brand) Get(name string) (color.Color, bool) {
	slot := b.slot(name)
	if slot == nil {
		return color.Color{}, false
	}
	return *slot, true
}

// Colors returns name -> hex for every colour.
func (b Brand) Colors() map[string]string {
	out := make(map[string]string, len(Names))
	for _, name := range Names {
		out[name] = b.slot(name).String()
	}
	return out
}

func (b *Brand) slot(name string) *color.Color {
	switch name {
	case NamePrimary:
		return &b.Primary
	case NameSecondary:
		return &b.Secondary
	case NameAccent:
		return &b.Accent
	case NameLight:
		return &b.Light
	case NameDark:
		return &b.Dark
	case NameText:
		return &b.Text
	case NameSuccess:
		return &b.Success
	case NameWarning:
		return &b.Warning
	case NameError:
		return &b.Error
	case NameInfo:
		return &b.Info
	}
	return nil
}

// Variation is a base colour with its light and dark steps.
type Variation struct {
	Base  color.Color
	Light color.Color
	Dark  color.Color
}

// Vary derives the light and dark steps of c.
func Vary(c color.Color) Variation {
	return Variation{
		Base:  c,
		Light: c.Lighten(VariationFactor),
		Dark:  c.Darken(VariationFactor),
	}
}

// Variations returns the steps of the primary, secondary and accent colours.
func (b Brand) Variations() map[string]Variation {
	return map[string]Variation{
		NamePrimary:   Vary(b.Primary),
		NameSecondary: Vary(b.Secondary),
		NameAccent:    Vary(b.Accent),
	}
}
