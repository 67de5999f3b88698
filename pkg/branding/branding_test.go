package branding_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-palette/pkg/branding"
	"github.com/goliatone/go-palette/pkg/render/template/gotemplate"
)

func TestDefault(t *testing.T) {
	want := map[string]string{
		"primary":   "#4361ee",
		"secondary": "#3a0ca3",
		"accent":    "#f59e0b",
		"light":     "#eff6ff",
		"dark":      "#1e3a8a",
		"text":      "#1f2937",
		"success":   "#10b981",
		"warning":   "#f59e0b",
		"error":     "#ef4444",
		"info":      "#3b82f6",
	}
	if diff := cmp.Diff(want, branding.Default().Colors()); diff != "" {
		t.Fatalf("default colours mismatch (-want +got):\n%s", diff)
	}
}

func TestFromValues(t *testing.T) {
	brand := branding.FromValues(map[string]string{
		"primary_color":   "bc9e11",
		"secondary":       "#ABC",
		"accent_color":    "not-a-colour",
		"text_color":      "",
		"text":            "#111111",
		"unrelated_color": "#ffffff",
	})

	got := map[string]string{
		"primary":   brand.Primary.String(),
		"secondary": brand.Secondary.String(),
		"accent":    brand.Accent.String(),
		"text":      brand.Text.String(),
	}
	want := map[string]string{
		"primary":   "#bc9e11",
		"secondary": "#aabbcc",
		"accent":    "#f59e0b",
		"text":      "#111111",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("from values mismatch (-want +got):\n%s", diff)
	}
}

func TestVary(t *testing.T) {
	v := branding.Vary(branding.Default().Primary)
	if v.Light.String() != "#5f78f0" {
		t.Fatalf("unexpected light %s", v.Light)
	}
	if v.Dark.String() != "#3852ca" {
		t.Fatalf("unexpected dark %s", v.Dark)
	}

	white := branding.Vary(branding.FromValues(map[string]string{"primary": "#ffffff"}).Primary)
	if white.Light.String() != "#ffffff" || white.Dark.String() != "#d8d8d8" {
		t.Fatalf("unexpected white variation %s / %s", white.Light, white.Dark)
	}
}

func TestCSSVars(t *testing.T) {
	brand := branding.FromValues(map[string]string{
		"primary_color":   "#4361ee",
		"secondary_color": "#bc9e11",
		"accent_color":    "#9339c6",
	})
	vars := brand.CSSVarMap()

	checks := map[string]string{
		"--tenant-primary":         "#4361ee",
		"--tenant-primary-light":   "#5f78f0",
		"--tenant-primary-dark":    "#3852ca",
		"--tenant-primary-rgb":     "67, 97, 238",
		"--tenant-primary-10":      "#4361ee1a",
		"--tenant-primary-20":      "#4361ee33",
		"--tenant-primary-50":      "#4361ee80",
		"--tenant-secondary":       "#bc9e11",
		"--tenant-accent":          "#9339c6",
		"--tenant-text-light":      "#6b7280",
		"--tenant-shadow-sm":       "0 1px 2px 0 rgba(67, 97, 238, 0.05)",
		"--tenant-gradient-hero":   "linear-gradient(135deg, #4361ee 0%, #bc9e11 100%)",
		"--tenant-gradient-light":  "linear-gradient(135deg, #eff6ff 0%, #ffffff 100%)",
		"--tenant-gradient-accent": "linear-gradient(135deg, #9339c6 0%, " + branding.Vary(brand.Accent).Light.String() + " 100%)",
	}
	for name, want := range checks {
		if got := vars[name]; got != want {
			t.Fatalf("%s: want %q, got %q", name, want, got)
		}
	}

	ordered := brand.CSSVars()
	if ordered[0].Name != "--tenant-primary" {
		t.Fatalf("expected primary first, got %s", ordered[0].Name)
	}
	if len(ordered) != len(vars) {
		t.Fatalf("duplicate variable names: %d ordered vs %d unique", len(ordered), len(vars))
	}
}

func TestRootBlock(t *testing.T) {
	block := branding.Default().RootBlock()
	if !strings.HasPrefix(block, ":root {\n") || !strings.HasSuffix(block, "}\n") {
		t.Fatalf("unexpected root block framing:\n%s", block)
	}
	if !strings.Contains(block, "  --tenant-info: #3b82f6;\n") {
		t.Fatalf("root block missing info colour:\n%s", block)
	}
}

func TestStylesheet(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	css, err := branding.Default().Stylesheet(engine)
	if err != nil {
		t.Fatalf("stylesheet: %v", err)
	}
	for _, fragment := range []string{
		":root {",
		"  --tenant-primary: #4361ee;",
		"  --tenant-gradient-primary: linear-gradient(135deg, #4361ee 0%, #5f78f0 100%);",
		".tenant-button-primary:hover",
		".bg-red-600 { background-color: var(--tenant-error) !important; }",
	} {
		if !strings.Contains(css, fragment) {
			t.Fatalf("stylesheet missing %q", fragment)
		}
	}

	if _, err := branding.Default().Stylesheet(nil); err == nil {
		t.Fatalf("expected error without engine")
	}
}

func TestManifestAndRendererConfig(t *testing.T) {
	brand := branding.Default()
	manifest := brand.Manifest("")
	if manifest.Name != branding.DefaultThemeName {
		t.Fatalf("expected default theme name, got %q", manifest.Name)
	}
	if manifest.Tokens["primary-dark"] != "#3852ca" {
		t.Fatalf("expected derived tokens, got %v", manifest.Tokens)
	}

	cfg, err := branding.RendererConfig(manifest, "")
	if err != nil {
		t.Fatalf("renderer config: %v", err)
	}
	if cfg.CSSVars["--tenant-primary"] != "#4361ee" {
		t.Fatalf("css vars not derived from tokens: %v", cfg.CSSVars)
	}
	if got := cfg.AssetURL(branding.AssetRuntime); got != "/assets/palette-runtime.js" {
		t.Fatalf("unexpected runtime url %q", got)
	}
	if got := cfg.AssetURL("unknown"); got != "" {
		t.Fatalf("unknown asset should resolve empty, got %q", got)
	}

	dark, err := branding.RendererConfig(manifest, branding.VariantDark)
	if err != nil {
		t.Fatalf("dark renderer config: %v", err)
	}
	if dark.Tokens["light"] != "#1e3a8a" || dark.Tokens["dark"] != "#eff6ff" {
		t.Fatalf("dark variant did not swap surfaces: %v", dark.Tokens)
	}
	if dark.Tokens["text"] != "#ffffff" {
		t.Fatalf("dark variant text should contrast, got %s", dark.Tokens["text"])
	}
	if dark.Variant != branding.VariantDark {
		t.Fatalf("variant not recorded, got %q", dark.Variant)
	}

	if _, err := branding.RendererConfig(manifest, "sepia"); err == nil {
		t.Fatalf("expected unknown variant error")
	}
	if _, err := branding.RendererConfig(nil, ""); err == nil {
		t.Fatalf("expected nil manifest error")
	}
}

func TestRendererConfigMergesVariantAssets(t *testing.T) {
	manifest := &theme.Manifest{
		Name:      "acme",
		Tokens:    map[string]string{"brand": "#123456"},
		Templates: map[string]string{"palette.form": "themes/acme/form.tmpl"},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files:  map[string]string{"palette.stylesheet": "theme.css"},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{"brand": "#654321"},
				Assets: theme.Assets{Files: map[string]string{"palette.runtime": "runtime.dark.js"}},
			},
		},
	}

	cfg, err := branding.RendererConfig(manifest, "dark")
	if err != nil {
		t.Fatalf("renderer config: %v", err)
	}
	if cfg.CSSVars["--tenant-brand"] != "#654321" {
		t.Fatalf("variant token not applied: %v", cfg.CSSVars)
	}
	if cfg.Partials["palette.form"] != "themes/acme/form.tmpl" {
		t.Fatalf("partials not carried: %v", cfg.Partials)
	}
	if got := cfg.AssetURL("palette.runtime"); got != "/assets/themes/acme/runtime.dark.js" {
		t.Fatalf("unexpected runtime url %q", got)
	}
	if got := cfg.AssetURL("palette.stylesheet"); got != "/assets/themes/acme/theme.css" {
		t.Fatalf("unexpected stylesheet url %q", got)
	}
}

func TestSelector(t *testing.T) {
	selector := branding.NewSelector(branding.Default().Manifest("tenant"), nil)

	cfg, err := branding.Select(selector, "", branding.VariantDark)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if cfg.Theme != "tenant" || cfg.Variant != branding.VariantDark {
		t.Fatalf("unexpected selection %s/%s", cfg.Theme, cfg.Variant)
	}

	if _, err := branding.Select(selector, "missing", ""); err == nil {
		t.Fatalf("expected unknown theme error")
	}
	if _, err := branding.Select(nil, "tenant", ""); err == nil {
		t.Fatalf("expected nil selector error")
	}
}
