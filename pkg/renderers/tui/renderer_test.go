package tui

import "github.com/goliatone/go-palette/pkg/render"

func renderOptions() render.RenderOptions {
	return render.RenderOptions{}
}
