package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-palette/pkg/form"
	"github.com/goliatone/go-palette/pkg/render"
)

// Renderer prints a form view as terminal swatches. It satisfies
// render.Renderer so it can sit in the same registry as the HTML renderer.
type Renderer struct {
	painter painter
	theme   Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a terminal renderer.
func New(options ...Option) *Renderer {
	cfg := newConfig(options)
	return &Renderer{
		painter: painter{noColor: cfg.noColor},
		theme:   cfg.theme,
	}
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render lists messages, one swatch line per row grouped by section and the
// palette preview. Render options other than the context are ignored.
func (r *Renderer) Render(ctx context.Context, view form.View, _ render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if view.Title != "" {
		fmt.Fprintln(&buf, r.painter.heading(view.Title))
		fmt.Fprintln(&buf)
	}
	for _, msg := range view.Messages {
		fmt.Fprintln(&buf, r.painter.message(r.theme, msg))
	}
	if len(view.Messages) > 0 {
		fmt.Fprintln(&buf)
	}

	for _, section := range view.Sections {
		if section.Title != "" {
			fmt.Fprintln(&buf, r.painter.heading(section.Title))
		}
		for _, row := range section.Rows {
			if row.Picker {
				fmt.Fprintln(&buf, r.painter.line(row.Label, row.Value))
				continue
			}
			fmt.Fprintf(&buf, "%*s  %-18s %s\n", chipWidth, "", row.Label, row.Value)
		}
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, r.painter.heading("Color Palette Preview"))
	if !view.Preview.Ready {
		fmt.Fprintln(&buf, form.PreviewFallback)
		return buf.Bytes(), nil
	}
	for _, chip := range view.Preview.Chips {
		fmt.Fprintln(&buf, r.painter.line(chip.Label, chip.Color))
	}
	return buf.Bytes(), nil
}
