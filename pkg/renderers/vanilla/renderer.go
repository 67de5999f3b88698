package vanilla

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/goliatone/go-palette/pkg/form"
	"github.com/goliatone/go-palette/pkg/palette"
	"github.com/goliatone/go-palette/pkg/render"
	rendertemplate "github.com/goliatone/go-palette/pkg/render/template"
	gotemplate "github.com/goliatone/go-palette/pkg/render/template/gotemplate"
	"github.com/goliatone/go-palette/pkg/renderers/vanilla/components"
)

// DefaultAssetPrefix is where AssetsFS is expected to be mounted.
const DefaultAssetPrefix = "/assets"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	registry         *components.Registry
	assetPrefix      string
	policy           *bluemonday.Policy
	logger           *zap.Logger
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithComponentRegistry replaces the default component registry.
func WithComponentRegistry(registry *components.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// WithAssetPrefix sets the URL prefix of asset keys the theme does not
// resolve.
func WithAssetPrefix(prefix string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimRight(strings.TrimSpace(prefix), "/"); trimmed != "" {
			cfg.assetPrefix = trimmed
		}
	}
}

// WithSanitizer overrides the policy applied to field descriptions.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.policy = policy
		}
	}
}

// WithLogger attaches a logger. The default discards output.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// Renderer renders a colour form to HTML.
type Renderer struct {
	templates   rendertemplate.TemplateRenderer
	registry    *components.Registry
	assetPrefix string
	policy      *bluemonday.Policy
	logger      *zap.Logger
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:  TemplatesFS(),
		assetPrefix: DefaultAssetPrefix,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.registry == nil {
		cfg.registry = components.NewDefaultRegistry()
	}
	if cfg.policy == nil {
		cfg.policy = bluemonday.UGCPolicy()
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:   renderer,
		registry:    cfg.registry,
		assetPrefix: cfg.assetPrefix,
		policy:      cfg.policy,
		logger:      cfg.logger,
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render emits the form page: theme variables, one row per field grouped by
// section, the palette preview and the assets of every component used.
func (r *Renderer) Render(ctx context.Context, view form.View, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	var partials map[string]string
	if options.Theme != nil {
		partials = options.Theme.Partials
	}
	cr := newComponentRenderer(r.templates, r.registry, partials, r.policy.Sanitize)

	sections := make([]map[string]any, 0, len(view.Sections))
	for _, section := range view.Sections {
		rows := make([]string, 0, len(section.Rows))
		for _, row := range section.Rows {
			var cfg map[string]any
			if row.ID == view.PrimaryID {
				cfg = map[string]any{
					components.ConfigAction:      true,
					components.ConfigActionLabel: view.ActionLabel,
				}
			}
			markup, err := cr.render(row, cfg)
			if err != nil {
				return nil, fmt.Errorf("vanilla renderer: %w", err)
			}
			rows = append(rows, markup)
		}
		sections = append(sections, map[string]any{
			"title":   section.Title,
			"classes": sectionClasses(section),
			"rows":    rows,
		})
	}

	data := map[string]any{
		"title":            view.Title,
		"action":           options.Action,
		"sections":         sections,
		"messages":         view.Messages,
		"preview":          view.Preview,
		"preview_fallback": form.PreviewFallback,
		"hidden":           render.SortedHiddenFields(options.HiddenFields),
		"config_json":      runtimeConfig(view),
		"stylesheet":       options.Stylesheet,
		"chrome": map[string]string{
			"form":     string(ClassForm),
			"section":  string(ClassSection),
			"messages": string(ClassMessages),
			"preview":  string(ClassPreview),
			"actions":  string(ClassActions),
		},
	}
	if options.Theme != nil {
		data["css_vars"] = cssVarsStyle(options.Theme.CSSVars)
	}
	if !options.OmitAssets {
		stylesheets, scripts := cr.assets()
		data["stylesheets"] = r.resolveStylesheets(stylesheets, options.Theme)
		data["scripts"] = r.resolveScripts(scripts, options.Theme)
	}

	result, err := r.templates.RenderTemplate("templates/form.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	r.logger.Debug("rendered form",
		zap.Int("sections", len(sections)),
		zap.Int("components", len(cr.used)),
	)
	return []byte(result), nil
}

// runtimeConfig tells the browser runtime which inputs to read and write and
// which messages to show.
func runtimeConfig(view form.View) string {
	payload := map[string]any{
		"ids": map[string]string{
			"primary":   view.PrimaryID,
			"secondary": view.SecondaryID,
			"accent":    view.AccentID,
		},
		"messages": map[string]string{
			"success": palette.MessageSuccess,
			"invalid": palette.MessageInvalidPrimary,
		},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "{}"
	}
	return string(data)
}

func sectionClasses(section form.SectionView) string {
	classes := []string{string(ClassSection)}
	if section.Collapsed {
		classes = append(classes, string(ClassCollapse))
	}
	for _, class := range section.Classes {
		if class = sanitizeClassList(class); class != "" {
			classes = append(classes, class)
		}
	}
	return strings.Join(classes, " ")
}
