// Package palette is the top-level entry point: it renders colour forms with
// live swatches and the "Generate Color Palette" action.
package palette

import (
	"context"
	"io/fs"

	internalLoader "github.com/goliatone/go-palette/internal/loader"
	"github.com/goliatone/go-palette/pkg/orchestrator"
	"github.com/goliatone/go-palette/pkg/render"
	"github.com/goliatone/go-palette/pkg/renderers/vanilla"
	"github.com/goliatone/go-palette/pkg/schema"
)

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// Request aliases orchestrator.Request.
type Request = orchestrator.Request

// Response aliases orchestrator.Response.
type Response = orchestrator.Response

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewLoader constructs a contract loader while keeping the concrete type
// hidden from consumers.
func NewLoader(options ...schema.LoaderOption) schema.Loader {
	return internalLoader.New(schema.NewLoaderOptions(options...))
}

// GenerateHTML loads the contract from source (the built-in one when source
// is nil) and renders it with the vanilla renderer.
func GenerateHTML(ctx context.Context, source schema.Source, operationID string, options ...orchestrator.Option) ([]byte, error) {
	resp, err := orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Source:      source,
		OperationID: operationID,
		Renderer:    "vanilla",
	})
	if err != nil {
		return nil, err
	}
	return resp.Output, nil
}

// EmbeddedTemplates exposes the built-in vanilla renderer templates.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// EmbeddedAssets exposes the browser runtime and stylesheet.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(palette.EmbeddedAssets()),
//	  ),
//	)
func EmbeddedAssets() fs.FS {
	return vanilla.AssetsFS()
}
