package orchestrator

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	internalLoader "github.com/goliatone/go-palette/internal/loader"
	"github.com/goliatone/go-palette/pkg/branding"
	"github.com/goliatone/go-palette/pkg/form"
	"github.com/goliatone/go-palette/pkg/palette"
	"github.com/goliatone/go-palette/pkg/preview"
	"github.com/goliatone/go-palette/pkg/render"
	"github.com/goliatone/go-palette/pkg/renderers/tui"
	"github.com/goliatone/go-palette/pkg/renderers/vanilla"
	"github.com/goliatone/go-palette/pkg/schema"
	"github.com/goliatone/go-palette/pkg/widgets"
)

const defaultRendererName = "vanilla"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom contract loader.
func WithLoader(loader schema.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithThemeSelector resolves themes through selector instead of building a
// manifest from the submitted brand colours.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.selector = selector
	}
}

// WithTheme sets the theme name and variant used when a request names none.
func WithTheme(name, variant string) Option {
	return func(o *Orchestrator) {
		o.themeName = name
		o.themeVariant = variant
	}
}

// WithGenerator swaps the palette generator handed to every form.
func WithGenerator(generator *palette.Generator) Option {
	return func(o *Orchestrator) {
		o.generator = generator
	}
}

// WithWidgetRegistry swaps the widget registry handed to every form.
func WithWidgetRegistry(registry *widgets.Registry) Option {
	return func(o *Orchestrator) {
		o.widgets = registry
	}
}

// WithLogger attaches a logger shared with the forms it builds.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator runs the contract → form → action → renderer pipeline. Each
// call builds a fresh form, so one Orchestrator can serve concurrent
// requests.
type Orchestrator struct {
	loader          schema.Loader
	registry        *render.Registry
	defaultRenderer string
	selector        theme.ThemeSelector
	themeName       string
	themeVariant    string
	generator       *palette.Generator
	widgets         *widgets.Registry
	logger          *zap.Logger
	initialiseErr   error
}

// New constructs an Orchestrator. Missing dependencies get the built-in
// implementations: the file loader, and a registry holding the vanilla and
// tui renderers.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		themeName:       branding.DefaultThemeName,
		logger:          zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one pass through the pipeline.
type Request struct {
	// Contract is used as-is when set. Otherwise Document, then Source, is
	// decoded; with none of them the default contract applies.
	Contract *schema.Contract
	Document *schema.Document
	Source   schema.Source

	// OperationID reads the document as OpenAPI and takes the contract from
	// that operation's request body.
	OperationID string

	// Values prefill fields by name before anything runs.
	Values map[string]string

	// Generate runs the generate action before rendering.
	Generate bool

	// Renderer names the renderer to use. Empty uses the default.
	Renderer string

	ThemeName    string
	ThemeVariant string

	RenderOptions render.RenderOptions
}

// Response is the rendered form plus what happened on the way.
type Response struct {
	Output      []byte
	Renderer    string
	ContentType string
	// Outcome is set when the request ran the generate action.
	Outcome *form.Outcome
	Values  map[string]string
	Brand   branding.Brand
}

// Contract resolves the contract a request refers to.
func (o *Orchestrator) Contract(ctx context.Context, req Request) (schema.Contract, error) {
	if req.Contract != nil {
		return req.Contract.Clone(), nil
	}

	doc := req.Document
	if doc == nil && req.Source != nil {
		loaded, err := o.loader.Load(ctx, req.Source)
		if err != nil {
			return schema.Contract{}, fmt.Errorf("orchestrator: load document: %w", err)
		}
		doc = &loaded
	}
	if doc == nil {
		return schema.DefaultContract(), nil
	}

	contract, err := doc.Contract(ctx, req.OperationID)
	if err != nil {
		return schema.Contract{}, fmt.Errorf("orchestrator: decode contract: %w", err)
	}
	return contract, nil
}

// Form builds the form for req with previews attached and values applied.
func (o *Orchestrator) Form(ctx context.Context, req Request, options ...form.Option) (*form.Form, error) {
	contract, err := o.Contract(ctx, req)
	if err != nil {
		return nil, err
	}

	opts := []form.Option{form.WithLogger(o.logger)}
	if o.generator != nil {
		opts = append(opts, form.WithGenerator(o.generator))
	}
	if o.widgets != nil {
		opts = append(opts, form.WithWidgetRegistry(o.widgets))
	}
	opts = append(opts, options...)

	f, err := form.New(contract, opts...)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	if err := f.Attach(preview.NewBinder(preview.WithLogger(o.logger))); err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	if len(req.Values) > 0 {
		f.SetValues(req.Values)
	}
	return f, nil
}

// Generate runs the pipeline and returns the rendered output.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Response, error) {
	if ctx == nil {
		return Response{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Response{}, err
	}

	notifier := &form.RecordingNotifier{}
	f, err := o.Form(ctx, req, form.WithNotifier(notifier))
	if err != nil {
		return Response{}, err
	}

	var resp Response
	if req.Generate {
		outcome := f.Generate()
		resp.Outcome = &outcome
	}
	resp.Values = f.Values()
	resp.Brand = branding.FromValues(resp.Values)

	opts := req.RenderOptions
	if opts.Theme == nil {
		cfg, err := o.resolveTheme(resp.Brand, req.ThemeName, req.ThemeVariant)
		if err != nil {
			return Response{}, err
		}
		opts.Theme = cfg
	}

	name := req.Renderer
	if name == "" {
		name = o.defaultRenderer
	}
	output, renderer, err := o.registry.Render(ctx, name, f.View(notifier.Messages()...), opts)
	if err != nil {
		return Response{}, fmt.Errorf("orchestrator: render output: %w", err)
	}

	resp.Output = output
	resp.Renderer = renderer.Name()
	resp.ContentType = renderer.ContentType()
	return resp, nil
}

// Theme resolves the renderer config for brand.
func (o *Orchestrator) Theme(brand branding.Brand, name, variant string) (*theme.RendererConfig, error) {
	return o.resolveTheme(brand, name, variant)
}

func (o *Orchestrator) resolveTheme(brand branding.Brand, name, variant string) (*theme.RendererConfig, error) {
	if name == "" {
		name = o.themeName
	}
	if variant == "" {
		variant = o.themeVariant
	}

	var (
		cfg *theme.RendererConfig
		err error
	)
	if o.selector != nil {
		cfg, err = branding.Select(o.selector, name, variant)
	} else {
		cfg, err = branding.RendererConfig(brand.Manifest(name), variant)
	}
	if err != nil {
		return nil, fmt.Errorf("orchestrator: resolve theme: %w", err)
	}
	return cfg, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = internalLoader.New(schema.NewLoaderOptions())
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New(vanilla.WithLogger(o.logger))
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
			return
		}
		o.registry.MustRegister(renderer)
		o.registry.MustRegister(tui.New(tui.WithLogger(o.logger)))
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}
