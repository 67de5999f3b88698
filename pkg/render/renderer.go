package render

import (
	"context"

	"github.com/goliatone/go-palette/pkg/form"
)

// Renderer converts a form view into a byte representation (HTML, terminal
// text).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view form.View, options RenderOptions) ([]byte, error)
}
