package tui

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-palette/pkg/color"
	"github.com/goliatone/go-palette/pkg/form"
	"github.com/goliatone/go-palette/pkg/palette"
)

// Prompter drives the generate action from a terminal.
type Prompter struct {
	driver  PromptDriver
	painter painter
	theme   Theme
	logger  *zap.Logger
}

// NewPrompter constructs a prompter backed by survey unless a driver is
// supplied.
func NewPrompter(options ...Option) *Prompter {
	cfg := newConfig(options)
	return &Prompter{
		driver:  cfg.driver,
		painter: painter{noColor: cfg.noColor},
		theme:   cfg.theme,
		logger:  cfg.logger,
	}
}

// Run asks for a primary colour until the generate action succeeds, prints
// the palette and then lets the user adjust any other colour field. It
// returns the successful outcome.
func (p *Prompter) Run(ctx context.Context, f *form.Form) (form.Outcome, error) {
	if ctx == nil {
		return form.Outcome{}, errors.New("tui: context is required")
	}
	if f == nil {
		return form.Outcome{}, errors.New("tui: form is required")
	}

	outcome, err := p.generate(ctx, f)
	if err != nil {
		return outcome, err
	}
	if err := p.printPalette(ctx, f); err != nil {
		return outcome, err
	}

	for {
		more, err := p.driver.Confirm(ctx, ConfirmConfig{
			Message: p.theme.PromptPrefix + "Adjust another color?",
		})
		if err != nil {
			return outcome, err
		}
		if !more {
			return outcome, nil
		}
		if err := p.adjust(ctx, f); err != nil {
			return outcome, err
		}
	}
}

func (p *Prompter) generate(ctx context.Context, f *form.Form) (form.Outcome, error) {
	primary := f.Primary()
	for {
		value, err := p.driver.Input(ctx, InputConfig{
			Message: p.theme.PromptPrefix + primary.Spec.Label,
			Default: primary.Value(),
			Help:    fmt.Sprintf("A #rrggbb hex colour, e.g. %s", palette.ExamplePrimary),
			Validator: func(v string) error {
				if palette.Validate(v) != nil {
					return errors.New(palette.MessageInvalidPrimary)
				}
				return nil
			},
		})
		if err != nil {
			return form.Outcome{}, err
		}

		primary.Input.Type(value)
		outcome := f.Generate()
		if err := p.driver.Info(ctx, p.painter.message(p.theme, outcome.Message)); err != nil {
			return outcome, err
		}
		if outcome.OK() {
			return outcome, nil
		}
		p.logger.Debug("re-prompting for primary colour", zap.String("value", value))
	}
}

func (p *Prompter) printPalette(ctx context.Context, f *form.Form) error {
	for _, field := range []*form.Field{f.Primary(), f.Secondary(), f.Accent()} {
		if err := p.driver.Info(ctx, p.painter.line(field.Spec.Label, field.Value())); err != nil {
			return err
		}
	}
	return nil
}

func (p *Prompter) adjust(ctx context.Context, f *form.Form) error {
	var pickers []*form.Field
	var labels []string
	for _, field := range f.Fields() {
		if field.Picker() {
			pickers = append(pickers, field)
			labels = append(labels, field.Spec.Label)
		}
	}
	if len(pickers) == 0 {
		return ErrNoPickers
	}

	idx, err := p.driver.Select(ctx, SelectConfig{
		Message: p.theme.PromptPrefix + "Which color?",
		Options: labels,
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(pickers) {
		return fmt.Errorf("tui: selection %d out of range", idx)
	}
	field := pickers[idx]

	value, err := p.driver.Input(ctx, InputConfig{
		Message: p.theme.PromptPrefix + field.Spec.Label,
		Default: field.Value(),
		Validator: func(v string) error {
			_, err := color.ParseLoose(v)
			return err
		},
	})
	if err != nil {
		return err
	}

	c, err := color.ParseLoose(value)
	if err != nil {
		return fmt.Errorf("tui: %s: %w", field.Spec.Name, err)
	}
	f.SetValues(map[string]string{field.Spec.Name: c.String()})
	return p.driver.Info(ctx, p.painter.line(field.Spec.Label, field.Value()))
}
