package branding

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-palette/pkg/color"
	rendertemplate "github.com/goliatone/go-palette/pkg/render/template"
)

// VarPrefix prefixes every custom property.
const VarPrefix = "--tenant-"

// Fixed neutrals shared by every brand.
const (
	textLight   = "#6b7280"
	textLighter = "#9ca3af"
	bgPrimary   = "#ffffff"
	bgSecondary = "#f9fafb"
	bgTertiary  = "#f3f4f6"
	border      = "#e5e7eb"
	borderLight = "#f3f4f6"
	borderDark  = "#d1d5db"
)

//go:embed templates/stylesheet.tmpl
var stylesheetTemplate string

// CSSVar is one custom property declaration.
type CSSVar struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// CSSVars returns the custom properties in declaration order.
func (b Brand) CSSVars() []CSSVar {
	vars := make([]CSSVar, 0, 48)
	add := func(name, value string) {
		vars = append(vars, CSSVar{Name: VarPrefix + name, Value: value})
	}

	primary := Vary(b.Primary)
	secondary := Vary(b.Secondary)
	accent := Vary(b.Accent)

	addScale := func(name string, v Variation) {
		add(name, v.Base.String())
		add(name+"-light", v.Light.String())
		add(name+"-dark", v.Dark.String())
		add(name+"-rgb", v.Base.RGBTriple())
	}

	addScale(NamePrimary, primary)
	add("primary-10", b.Primary.String()+"1a")
	add("primary-20", b.Primary.String()+"33")
	add("primary-50", b.Primary.String()+"80")
	addScale(NameSecondary, secondary)
	addScale(NameAccent, accent)

	add(NameLight, b.Light.String())
	add(NameDark, b.Dark.String())

	add(NameText, b.Text.String())
	add("text-light", textLight)
	add("text-lighter", textLighter)

	add(NameSuccess, b.Success.String())
	add(NameWarning, b.Warning.String())
	add(NameError, b.Error.String())
	add(NameInfo, b.Info.String())

	add("bg-primary", bgPrimary)
	add("bg-secondary", bgSecondary)
	add("bg-tertiary", bgTertiary)

	add("border", border)
	add("border-light", borderLight)
	add("border-dark", borderDark)

	rgb := b.Primary.RGBTriple()
	add("shadow-sm", fmt.Sprintf("0 1px 2px 0 %s", rgba(rgb, "0.05")))
	add("shadow", fmt.Sprintf("0 1px 3px 0 %s, 0 1px 2px 0 %s", rgba(rgb, "0.1"), rgba(rgb, "0.06")))
	add("shadow-md", fmt.Sprintf("0 4px 6px -1px %s, 0 2px 4px -1px %s", rgba(rgb, "0.1"), rgba(rgb, "0.06")))
	add("shadow-lg", fmt.Sprintf("0 10px 15px -3px %s, 0 4px 6px -2px %s", rgba(rgb, "0.1"), rgba(rgb, "0.05")))
	add("shadow-xl", fmt.Sprintf("0 20px 25px -5px %s, 0 10px 10px -5px %s", rgba(rgb, "0.1"), rgba(rgb, "0.04")))

	add("gradient-primary", gradient(b.Primary, primary.Light.String()))
	add("gradient-secondary", gradient(b.Secondary, secondary.Light.String()))
	add("gradient-hero", gradient(b.Primary, b.Secondary.String()))
	add("gradient-accent", gradient(b.Accent, accent.Light.String()))
	add("gradient-light", gradient(b.Light, bgPrimary))
	return vars
}

// CSSVarMap returns the custom properties keyed by name.
func (b Brand) CSSVarMap() map[string]string {
	vars := b.CSSVars()
	out := make(map[string]string, len(vars))
	for _, v := range vars {
		out[v.Name] = v.Value
	}
	return out
}

// RootBlock renders the :root declaration block without utility classes.
func (b Brand) RootBlock() string {
	var sb strings.Builder
	sb.WriteString(":root {\n")
	for _, v := range b.CSSVars() {
		sb.WriteString("  ")
		sb.WriteString(v.Name)
		sb.WriteString(": ")
		sb.WriteString(v.Value)
		sb.WriteString(";\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}

// Stylesheet renders the :root block plus the tenant utility classes.
func (b Brand) Stylesheet(engine rendertemplate.TemplateRenderer) (string, error) {
	if engine == nil {
		return "", errors.New("branding: template renderer is required")
	}
	out, err := engine.RenderString(stylesheetTemplate, map[string]any{
		"vars":   b.CSSVars(),
		"colors": b.Colors(),
	})
	if err != nil {
		return "", fmt.Errorf("branding: render stylesheet: %w", err)
	}
	return out, nil
}

func rgba(triple, alpha string) string {
	return "rgba(" + triple + ", " + alpha + ")"
}

func gradient(from color.Color, to string) string {
	return "linear-gradient(135deg, " + from.String() + " 0%, " + to + " 100%)"
}
