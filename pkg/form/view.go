package form

import (
	"github.com/goliatone/go-palette/pkg/color"
	"github.com/goliatone/go-palette/pkg/preview"
	"github.com/goliatone/go-palette/pkg/schema"
)

// View is the render-ready snapshot of a form.
type View struct {
	Title       string        `json:"title"`
	ActionLabel string        `json:"action_label"`
	Sections    []SectionView `json:"sections"`
	Messages    []Message     `json:"messages,omitempty"`
	PrimaryID   string        `json:"primary_id"`
	SecondaryID string        `json:"secondary_id"`
	AccentID    string        `json:"accent_id"`
	Preview     PreviewView   `json:"preview"`
}

// PreviewView is the palette preview block. It is ready once both the
// primary and secondary fields hold a value. Chips and the gradient only
// carry values that parse as colours, in canonical form; the gradient is
// empty unless both ends parse.
type PreviewView struct {
	Ready        bool   `json:"ready"`
	Chips        []Chip `json:"chips,omitempty"`
	GradientFrom string `json:"gradient_from,omitempty"`
	GradientTo   string `json:"gradient_to,omitempty"`
}

// Chip is one colour in the preview.
type Chip struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// PreviewFallback is shown instead of the preview until it is ready.
const PreviewFallback = "Set primary and secondary colors to see preview"

// previewExtras are shown after the three palette colours when the contract
// has them.
var previewExtras = []struct{ name, label string }{
	{"success_color", "Success"},
	{"warning_color", "Warning"},
	{"error_color", "Error"},
}

// SectionView groups rows under a fieldset.
type SectionView struct {
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Collapsed bool      `json:"collapsed"`
	Classes   []string  `json:"classes,omitempty"`
	Rows      []RowView `json:"rows"`
}

// RowView is one field with its current value and, for pickers, the inline
// style of its swatch.
type RowView struct {
	Name        string   `json:"name"`
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Description string   `json:"description,omitempty"`
	Value       string   `json:"value"`
	Widget      string   `json:"widget"`
	Role        string   `json:"role,omitempty"`
	Classes     []string `json:"classes,omitempty"`
	Picker      bool     `json:"picker"`
	SwatchStyle string   `json:"swatch_style,omitempty"`
}

// View snapshots the form. Swatch styles come from the attached binder when
// there is one and from the default style otherwise.
func (f *Form) View(messages ...Message) View {
	view := View{
		Title:       f.contract.Title,
		ActionLabel: ActionGenerate,
		Messages:    append([]Message(nil), messages...),
		PrimaryID:   f.primary.Spec.ID,
		SecondaryID: f.secondary.Spec.ID,
		AccentID:    f.accent.Spec.ID,
		Preview:     f.preview(),
	}

	binder := f.Binder()
	for _, section := range f.sections() {
		sv := SectionView{
			Name:      section.Name,
			Title:     section.Title,
			Collapsed: section.Collapsed,
			Classes:   append([]string(nil), section.Classes...),
		}
		for _, spec := range f.contract.SectionFields(section.Name) {
			field := f.byName[spec.Name]
			row := RowView{
				Name:        spec.Name,
				ID:          spec.ID,
				Label:       spec.Label,
				Description: spec.Description,
				Value:       field.Value(),
				Widget:      field.Widget,
				Role:        string(spec.Role),
				Classes:     append([]string(nil), spec.Classes...),
				Picker:      field.Picker(),
			}
			if row.Picker {
				row.SwatchStyle = swatchStyle(binder, field)
			}
			sv.Rows = append(sv.Rows, row)
		}
		if len(sv.Rows) > 0 {
			view.Sections = append(view.Sections, sv)
		}
	}
	return view
}

func (f *Form) preview() PreviewView {
	primary, secondary := f.primary.Value(), f.secondary.Value()
	if primary == "" || secondary == "" {
		return PreviewView{}
	}

	valueOr := func(field *Field) string {
		if v := field.Value(); v != "" {
			return v
		}
		return field.Spec.Default
	}

	pv := PreviewView{Ready: true}
	if from, ok := canonical(primary); ok {
		if to, ok := canonical(secondary); ok {
			pv.GradientFrom, pv.GradientTo = from, to
		}
	}

	addChip := func(label, value string) {
		if c, ok := canonical(value); ok {
			pv.Chips = append(pv.Chips, Chip{Label: label, Color: c})
		}
	}
	addChip("Primary", primary)
	addChip("Secondary", secondary)
	addChip("Accent", valueOr(f.accent))
	for _, extra := range previewExtras {
		if field, ok := f.byName[extra.name]; ok {
			addChip(extra.label, valueOr(field))
		}
	}
	return pv
}

func canonical(value string) (string, bool) {
	c, err := color.Parse(value)
	if err != nil {
		return "", false
	}
	return c.String(), true
}

// sections returns the declared sections plus an untitled bucket for fields
// outside any of them.
func (f *Form) sections() []schema.Section {
	out := append([]schema.Section(nil), f.contract.Sections...)
	return append(out, schema.Section{})
}

func swatchStyle(binder *preview.Binder, field *Field) string {
	if binder != nil {
		if swatch, ok := binder.Swatch(field.Spec.ID); ok {
			return swatch.InlineStyle()
		}
	}
	return preview.DefaultStyle.CSS() + " background-color: " + field.Value() + ";"
}
