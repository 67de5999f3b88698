package branding

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-palette/pkg/color"
)

// Theme defaults.
const (
	DefaultThemeName    = "tenant"
	DefaultThemeVersion = "1.0.0"
	VariantDark         = "dark"
	DefaultAssetPrefix  = "/assets"
)

// Asset keys resolved through RendererConfig.AssetURL.
const (
	AssetStylesheet = "palette.stylesheet"
	AssetRuntime    = "palette.runtime"
	AssetTheme      = "tenant.theme"
)

// Tokens flattens the brand into theme tokens: every colour, the -light and
// -dark steps of the three palette colours and the rgb triples.
func (b Brand) Tokens() map[string]string {
	tokens := b.Colors()
	for name, v := range b.Variations() {
		tokens[name+"-light"] = v.Light.String()
		tokens[name+"-dark"] = v.Dark.String()
		tokens[name+"-rgb"] = v.Base.RGBTriple()
	}
	return tokens
}

// Manifest describes the brand as a go-theme manifest. The dark variant
// swaps the surface colours and picks a readable text colour for them.
func (b Brand) Manifest(name string) *theme.Manifest {
	if strings.TrimSpace(name) == "" {
		name = DefaultThemeName
	}
	return &theme.Manifest{
		Name:    name,
		Version: DefaultThemeVersion,
		Tokens:  b.Tokens(),
		Assets: theme.Assets{
			Prefix: DefaultAssetPrefix,
			Files: map[string]string{
				AssetStylesheet: "palette.css",
				AssetRuntime:    "palette-runtime.js",
				AssetTheme:      "theme.css",
			},
		},
		Variants: map[string]theme.Variant{
			VariantDark: {
				Tokens: map[string]string{
					NameLight: b.Dark.String(),
					NameDark:  b.Light.String(),
					NameText:  color.ContrastText(b.Dark).String(),
				},
			},
		},
	}
}

// RendererConfig resolves a manifest variant into the configuration consumed
// by renderers. Variant tokens, templates and asset files override the base
// ones; CSS variables are the tokens under VarPrefix.
func RendererConfig(manifest *theme.Manifest, variant string) (*theme.RendererConfig, error) {
	if manifest == nil {
		return nil, errors.New("branding: manifest is required")
	}

	tokens := maps.Clone(manifest.Tokens)
	if tokens == nil {
		tokens = map[string]string{}
	}
	partials := maps.Clone(manifest.Templates)
	if partials == nil {
		partials = map[string]string{}
	}
	prefix := manifest.Assets.Prefix
	files := maps.Clone(manifest.Assets.Files)
	if files == nil {
		files = map[string]string{}
	}

	variant = strings.TrimSpace(variant)
	if variant != "" {
		v, ok := manifest.Variants[variant]
		if !ok {
			return nil, fmt.Errorf("branding: theme %q has no variant %q", manifest.Name, variant)
		}
		maps.Copy(tokens, v.Tokens)
		maps.Copy(partials, v.Templates)
		maps.Copy(files, v.Assets.Files)
		if v.Assets.Prefix != "" {
			prefix = v.Assets.Prefix
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars[VarPrefix+key] = value
	}

	return &theme.RendererConfig{
		Theme:    manifest.Name,
		Variant:  variant,
		Tokens:   tokens,
		CSSVars:  cssVars,
		Partials: partials,
		AssetURL: assetResolver(prefix, files),
	}, nil
}

// Select asks selector for a theme and resolves it with RendererConfig.
func Select(selector theme.ThemeSelector, name, variant string) (*theme.RendererConfig, error) {
	if selector == nil {
		return nil, errors.New("branding: theme selector is required")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("branding: select theme %q: %w", name, err)
	}
	if selection == nil || selection.Manifest == nil {
		return nil, fmt.Errorf("branding: theme %q not found", name)
	}
	cfg, err := RendererConfig(selection.Manifest, selection.Variant)
	if err != nil {
		return nil, err
	}
	if selection.Theme != "" {
		cfg.Theme = selection.Theme
	}
	return cfg, nil
}

// Selector serves manifests built from brands. It satisfies
// theme.ThemeSelector.
type Selector struct {
	manifests map[string]*theme.Manifest
	fallback  string
}

// NewSelector registers manifests by name. The first one is the fallback for
// an empty name.
func NewSelector(manifests ...*theme.Manifest) *Selector {
	s := &Selector{manifests: make(map[string]*theme.Manifest, len(manifests))}
	for _, m := range manifests {
		if m == nil {
			continue
		}
		if s.fallback == "" {
			s.fallback = m.Name
		}
		s.manifests[m.Name] = m
	}
	return s
}

var _ theme.ThemeSelector = (*Selector)(nil)

// Select returns the named manifest. Unknown variants are reported by
// RendererConfig, not here.
func (s *Selector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if strings.TrimSpace(name) == "" {
		name = s.fallback
	}
	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("branding: unknown theme %q", name)
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	prefix = strings.TrimRight(prefix, "/")
	return func(key string) string {
		if key == "" {
			return ""
		}
		file, ok := files[key]
		if !ok {
			return ""
		}
		return prefix + "/" + strings.TrimLeft(file, "/")
	}
}
