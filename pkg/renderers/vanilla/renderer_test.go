package vanilla_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-palette/pkg/branding"
	"github.com/goliatone/go-palette/pkg/form"
	"github.com/goliatone/go-palette/pkg/palette"
	"github.com/goliatone/go-palette/pkg/render"
	"github.com/goliatone/go-palette/pkg/renderers/vanilla"
	"github.com/goliatone/go-palette/pkg/renderers/vanilla/components"
	"github.com/goliatone/go-palette/pkg/testsupport"
)

func renderDefault(t *testing.T, f *form.Form, opts render.RenderOptions, messages ...form.Message) string {
	t.Helper()
	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := renderer.Render(context.Background(), f.View(messages...), opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestRenderer_NameAndContentType(t *testing.T) {
	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if renderer.Name() != "vanilla" {
		t.Fatalf("unexpected name %q", renderer.Name())
	}
	if !strings.HasPrefix(renderer.ContentType(), "text/html") {
		t.Fatalf("unexpected content type %q", renderer.ContentType())
	}
}

func TestRenderer_OneSwatchPerPicker(t *testing.T) {
	out := renderDefault(t, testsupport.NewForm(t), render.RenderOptions{})

	if got := strings.Count(out, `type="color"`); got != 10 {
		t.Fatalf("expected 10 colour inputs, got %d", got)
	}
	if got := strings.Count(out, `class="color-preview"`); got != 10 {
		t.Fatalf("expected 10 swatches, got %d", got)
	}
	if !strings.Contains(out, `data-preview-for="id_primary_color"`) {
		t.Fatalf("primary swatch missing:\n%s", out)
	}
	if !strings.Contains(out, "background-color: #2563eb;") {
		t.Fatalf("swatch style missing primary colour:\n%s", out)
	}
}

func TestRenderer_GenerateButtonOnlyOnPrimaryRow(t *testing.T) {
	out := renderDefault(t, testsupport.NewForm(t), render.RenderOptions{})

	if got := strings.Count(out, "generate-palette-btn"); got != 1 {
		t.Fatalf("expected one generate button, got %d", got)
	}
	row := rowMarkup(t, out, "primary_color")
	if !strings.Contains(row, form.ActionGenerate) {
		t.Fatalf("generate button not in primary row:\n%s", row)
	}
	if !strings.Contains(row, `value="generate"`) {
		t.Fatalf("generate button should post action=generate:\n%s", row)
	}
}

func TestRenderer_SectionsAndChrome(t *testing.T) {
	out := renderDefault(t, testsupport.NewForm(t), render.RenderOptions{})

	for _, want := range []string{
		"<h1>Tenant Branding</h1>",
		"<h2>Brand Colors - Primary Palette</h2>",
		"<h2>Brand Colors - Semantic Colors</h2>",
		`class="module collapse color-palette-section"`,
		`class="palette-form"`,
		"<h2>Color Palette Preview</h2>",
		`value="save"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderer_AssetsEmittedOnce(t *testing.T) {
	out := renderDefault(t, testsupport.NewForm(t), render.RenderOptions{})

	if got := strings.Count(out, `<link rel="stylesheet" href="/assets/palette.css">`); got != 1 {
		t.Fatalf("expected stylesheet once, got %d:\n%s", got, out)
	}
	if got := strings.Count(out, `<script src="/assets/palette-runtime.js" defer></script>`); got != 1 {
		t.Fatalf("expected runtime once, got %d:\n%s", got, out)
	}

	omitted := renderDefault(t, testsupport.NewForm(t), render.RenderOptions{OmitAssets: true})
	if strings.Contains(omitted, "<script") || strings.Contains(omitted, "<link") {
		t.Fatalf("assets should be omitted:\n%s", omitted)
	}
}

func TestRenderer_ThemeAssetsAndVars(t *testing.T) {
	manifest := branding.Default().Manifest("acme")
	manifest.Assets.Prefix = "https://cdn.example.com/acme"
	cfg, err := branding.RendererConfig(manifest, "")
	if err != nil {
		t.Fatalf("renderer config: %v", err)
	}

	out := renderDefault(t, testsupport.NewForm(t), render.RenderOptions{Theme: cfg})

	if !strings.Contains(out, `href="https://cdn.example.com/acme/palette.css"`) {
		t.Fatalf("expected themed stylesheet URL:\n%s", out)
	}
	if !strings.Contains(out, `src="https://cdn.example.com/acme/palette-runtime.js"`) {
		t.Fatalf("expected themed runtime URL:\n%s", out)
	}
	if !strings.Contains(out, ":root {") || !strings.Contains(out, "--tenant-primary: #4361ee;") {
		t.Fatalf("expected theme variables:\n%s", out)
	}
}

func TestRenderer_MessagesAndHiddenFields(t *testing.T) {
	msg := form.Message{Level: form.LevelError, Text: palette.MessageInvalidPrimary}
	out := renderDefault(t, testsupport.NewForm(t), render.RenderOptions{
		Action:       "/branding",
		HiddenFields: render.MergeHiddenFields(nil, render.CSRFToken("_csrf", "abc")),
	}, msg)

	for _, want := range []string{
		`<li class="error" role="alert">Please set a valid primary color first (e.g., #4361ee)</li>`,
		`<input type="hidden" name="_csrf" value="abc">`,
		`action="/branding"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderer_RuntimeConfig(t *testing.T) {
	out := renderDefault(t, testsupport.NewForm(t), render.RenderOptions{})

	for _, want := range []string{
		"&quot;primary&quot;:&quot;id_primary_color&quot;",
		"&quot;accent&quot;:&quot;id_accent_color&quot;",
		"Color palette generated successfully!",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in runtime config:\n%s", want, out)
		}
	}
}

func TestRenderer_PreviewFallback(t *testing.T) {
	f := testsupport.NewForm(t)
	f.SetValues(map[string]string{"secondary_color": ""})

	out := renderDefault(t, f, render.RenderOptions{})
	if !strings.Contains(out, form.PreviewFallback) {
		t.Fatalf("expected preview fallback:\n%s", out)
	}
	if strings.Contains(out, "Brand Gradient Preview") {
		t.Fatalf("gradient should not render before the preview is ready")
	}

	ready := renderDefault(t, testsupport.NewForm(t), render.RenderOptions{})
	if !strings.Contains(ready, "linear-gradient(135deg, #2563eb, #7c3aed)") {
		t.Fatalf("expected gradient preview:\n%s", ready)
	}
}

func TestRenderer_PreviewChipsOnlyCarryColors(t *testing.T) {
	f := testsupport.NewForm(t)
	f.SetValues(map[string]string{
		"secondary_color": "red; background:url(x)",
		"success_color":   "#ABCDEF",
	})

	out := renderDefault(t, f, render.RenderOptions{})
	if strings.Contains(out, `title="Secondary:`) {
		t.Fatalf("unparsable secondary should not produce a chip:\n%s", out)
	}
	if !strings.Contains(out, `background-color: #abcdef; border-radius: 4px;" title="Success: #abcdef"`) {
		t.Fatalf("expected canonical success chip:\n%s", out)
	}
	if strings.Contains(out, "Brand Gradient Preview") {
		t.Fatalf("gradient needs two parsable colours:\n%s", out)
	}
}

func TestRenderer_SanitizesDescriptions(t *testing.T) {
	contract := testsupport.NewForm(t).Contract()
	contract.Fields[0].Description = `Main brand colour <script>alert(1)</script><b>bold</b>`
	f, err := form.New(contract)
	if err != nil {
		t.Fatalf("new form: %v", err)
	}

	out := renderDefault(t, f, render.RenderOptions{})
	if strings.Contains(out, "alert(1)") {
		t.Fatalf("script should be stripped:\n%s", out)
	}
	if !strings.Contains(out, `<div class="help">Main brand colour <b>bold</b></div>`) {
		t.Fatalf("expected sanitized help text:\n%s", out)
	}
}

func TestRenderer_UnknownComponent(t *testing.T) {
	text, ok := components.NewDefaultRegistry().Descriptor(components.NameText)
	if !ok {
		t.Fatalf("text component missing from default registry")
	}
	registry := components.New()
	registry.MustRegister(components.NameText, text)
	renderer, err := vanilla.New(vanilla.WithComponentRegistry(registry))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	_, err = renderer.Render(context.Background(), testsupport.NewForm(t).View(), render.RenderOptions{})
	if err == nil || !strings.Contains(err.Error(), `component "color-picker" not registered`) {
		t.Fatalf("expected unknown component error, got %v", err)
	}
}

func TestRenderer_ContextCancelled(t *testing.T) {
	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := renderer.Render(ctx, testsupport.NewForm(t).View(), render.RenderOptions{}); err == nil {
		t.Fatalf("expected context error")
	}
}

func rowMarkup(t *testing.T, out, name string) string {
	t.Helper()
	start := strings.Index(out, "field-"+name+`"`)
	if start < 0 {
		t.Fatalf("row %s not found:\n%s", name, out)
	}
	rest := out[start:]
	end := strings.Index(rest, "    </div>\n")
	if end < 0 {
		t.Fatalf("row %s not terminated", name)
	}
	return rest[:end]
}
