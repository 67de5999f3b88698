package components

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goliatone/go-palette/pkg/branding"
	"github.com/goliatone/go-palette/pkg/form"
)

const templatePrefix = "templates/components/"

// Partial keys a theme can override through RendererConfig.Partials.
const (
	PartialColorPicker = "palette.color-picker"
	PartialText        = "palette.text"
)

// NewDefaultRegistry returns a registry with the colour picker and text
// components. The picker pulls in the runtime script and stylesheet.
func NewDefaultRegistry() *Registry {
	registry := New()

	registry.MustRegister(NameColorPicker, Descriptor{
		Renderer:    templateComponentRenderer(PartialColorPicker, templatePrefix+"color_picker.tmpl"),
		Stylesheets: []string{branding.AssetStylesheet},
		Scripts: []Script{
			{Src: branding.AssetRuntime, Defer: true},
		},
	})
	registry.MustRegister(NameText, Descriptor{
		Renderer:    templateComponentRenderer(PartialText, templatePrefix+"text.tmpl"),
		Stylesheets: []string{branding.AssetStylesheet},
	})

	return registry
}

func templateComponentRenderer(partialKey, templateName string) Renderer {
	return func(buf *bytes.Buffer, row form.RowView, data ComponentData) error {
		if data.Template == nil {
			return fmt.Errorf("components: template renderer not configured for %q", templateName)
		}

		resolved := templateName
		if candidate := strings.TrimSpace(data.Partials[partialKey]); candidate != "" {
			resolved = candidate
		}

		payload := map[string]any{
			"row":    row,
			"class":  strings.Join(row.Classes, " "),
			"config": data.Config,
		}
		rendered, err := data.Template.RenderTemplate(resolved, payload)
		if err != nil {
			return fmt.Errorf("components: render template %q: %w", resolved, err)
		}
		buf.WriteString(rendered)
		return nil
	}
}
