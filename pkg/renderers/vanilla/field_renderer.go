package vanilla

import (
	"bytes"
	"fmt"
	"html"
	"slices"
	"strings"

	"github.com/goliatone/go-palette/pkg/form"
	"github.com/goliatone/go-palette/pkg/render/template"
	"github.com/goliatone/go-palette/pkg/renderers/vanilla/components"
)

type componentRenderer struct {
	templates template.TemplateRenderer
	registry  *components.Registry
	partials  map[string]string
	sanitize  func(string) string

	used map[string]struct{}
}

func newComponentRenderer(templates template.TemplateRenderer, registry *components.Registry, partials map[string]string, sanitize func(string) string) *componentRenderer {
	if registry == nil {
		registry = components.NewDefaultRegistry()
	}
	if sanitize == nil {
		sanitize = html.EscapeString
	}
	return &componentRenderer{
		templates: templates,
		registry:  registry,
		partials:  partials,
		sanitize:  sanitize,
		used:      make(map[string]struct{}),
	}
}

func (r *componentRenderer) render(row form.RowView, config map[string]any) (string, error) {
	name := strings.TrimSpace(row.Widget)
	if name == "" {
		name = components.NameText
	}

	descriptor, ok := r.registry.Descriptor(name)
	if !ok {
		return "", fmt.Errorf("component %q not registered for field %q", name, row.Name)
	}

	var control bytes.Buffer
	data := components.ComponentData{
		Template: r.templates,
		Partials: r.partials,
		Config:   config,
	}
	if err := descriptor.Renderer(&control, row, data); err != nil {
		return "", fmt.Errorf("render component %q for field %q: %w", name, row.Name, err)
	}

	r.used[name] = struct{}{}
	return buildRowMarkup(row, name, control.String(), r.sanitize(strings.TrimSpace(row.Description))), nil
}

func (r *componentRenderer) assets() (stylesheets []string, scripts []components.Script) {
	if len(r.used) == 0 {
		return nil, nil
	}
	names := make([]string, 0, len(r.used))
	for name := range r.used {
		names = append(names, name)
	}
	slices.Sort(names)
	return r.registry.Assets(names)
}

// buildRowMarkup wraps a control in the admin row chrome. description must
// already be safe HTML.
func buildRowMarkup(row form.RowView, componentName, control, description string) string {
	var builder strings.Builder
	builder.Grow(len(control) + 256)

	builder.WriteString(`    <div class="`)
	builder.WriteString(string(ClassRow))
	builder.WriteString(` field-`)
	builder.WriteString(html.EscapeString(row.Name))
	builder.WriteString(`" data-component="`)
	builder.WriteString(html.EscapeString(componentName))
	builder.WriteString("\">\n")

	if label := strings.TrimSpace(row.Label); label != "" {
		builder.WriteString(`      <label for="`)
		builder.WriteString(html.EscapeString(row.ID))
		builder.WriteString(`">`)
		builder.WriteString(html.EscapeString(label))
		builder.WriteString("</label>\n")
	}

	for _, line := range strings.Split(control, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		builder.WriteString("      ")
		builder.WriteString(line)
		builder.WriteByte('\n')
	}

	if description != "" {
		builder.WriteString(`      <div class="help">`)
		builder.WriteString(description)
		builder.WriteString("</div>\n")
	}

	builder.WriteString("    </div>\n")
	return builder.String()
}
