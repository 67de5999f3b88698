package tui

import (
	"fmt"

	fcolor "github.com/fatih/color"

	"github.com/goliatone/go-palette/pkg/color"
	"github.com/goliatone/go-palette/pkg/form"
)

const chipWidth = 6

type painter struct {
	noColor bool
}

func (p painter) paint(c *fcolor.Color, text string) string {
	if p.noColor {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c.Sprint(text)
}

// chip renders a truecolor block for value. Values that do not parse print
// as a blank block.
func (p painter) chip(value string) string {
	blank := fmt.Sprintf("%*s", chipWidth, "")
	c, err := color.Parse(value)
	if err != nil {
		return blank
	}
	r, g, b := c.Channels()
	return p.paint(fcolor.BgRGB(r, g, b), blank)
}

// line renders "<chip>  <label> <value>".
func (p painter) line(label, value string) string {
	shown := value
	if shown == "" {
		shown = "(unset)"
	} else if _, err := color.Parse(value); err != nil {
		shown = value + " (invalid)"
	}
	return fmt.Sprintf("%s  %-18s %s", p.chip(value), label, shown)
}

func (p painter) heading(text string) string {
	return p.paint(fcolor.New(fcolor.Bold), text)
}

func (p painter) message(theme Theme, msg form.Message) string {
	if msg.Level == form.LevelError {
		return p.paint(fcolor.New(fcolor.FgRed), theme.ErrorPrefix+msg.Text)
	}
	return p.paint(fcolor.New(fcolor.FgGreen), theme.InfoPrefix+msg.Text)
}
