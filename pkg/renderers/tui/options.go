package tui

import (
	"io"

	"go.uber.org/zap"
)

// Theme holds the prefixes printed before prompts and messages.
type Theme struct {
	PromptPrefix string
	InfoPrefix   string
	ErrorPrefix  string
}

// DefaultTheme is applied when no theme is configured.
var DefaultTheme = Theme{
	InfoPrefix:  "✔ ",
	ErrorPrefix: "✘ ",
}

// Option configures the renderer and the prompter.
type Option func(*config)

type config struct {
	driver  PromptDriver
	out     io.Writer
	noColor bool
	theme   Theme
	logger  *zap.Logger
}

// WithPromptDriver overrides the prompt driver used by the prompter.
func WithPromptDriver(driver PromptDriver) Option {
	return func(cfg *config) {
		if driver != nil {
			cfg.driver = driver
		}
	}
}

// WithOutput sets where the survey driver prints informational lines.
func WithOutput(out io.Writer) Option {
	return func(cfg *config) {
		if out != nil {
			cfg.out = out
		}
	}
}

// WithNoColor disables ANSI colour so swatches print as plain text.
func WithNoColor(disabled bool) Option {
	return func(cfg *config) {
		cfg.noColor = disabled
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(cfg *config) {
		cfg.theme = theme
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

func newConfig(options []Option) config {
	cfg := config{theme: DefaultTheme}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.driver == nil {
		cfg.driver = newSurveyDriver(cfg.out)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	return cfg
}
