package form_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-palette/pkg/form"
	"github.com/goliatone/go-palette/pkg/palette"
	"github.com/goliatone/go-palette/pkg/preview"
	"github.com/goliatone/go-palette/pkg/schema"
	"github.com/goliatone/go-palette/pkg/testsupport"
)

func newAttachedForm(t *testing.T) (*form.Form, *preview.Binder, *form.RecordingNotifier) {
	t.Helper()
	notifier := &form.RecordingNotifier{}
	f, err := form.New(schema.DefaultContract(), form.WithNotifier(notifier))
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	binder := preview.NewBinder()
	if err := f.Attach(binder); err != nil {
		t.Fatalf("attach: %v", err)
	}
	return f, binder, notifier
}

func TestNew_SeedsDefaults(t *testing.T) {
	f, err := form.New(schema.DefaultContract())
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	values := f.Values()
	if values["primary_color"] != "#2563eb" || values["info_color"] != "#3b82f6" {
		t.Fatalf("unexpected defaults: %v", values)
	}
	if got := len(f.Fields()); got != 10 {
		t.Fatalf("expected 10 fields, got %d", got)
	}
	if f.Primary().Spec.ID != "id_primary_color" {
		t.Fatalf("unexpected primary id %q", f.Primary().Spec.ID)
	}
}

func TestNew_RejectsContractWithoutRoles(t *testing.T) {
	contract := schema.Contract{Fields: []schema.FieldSpec{{Name: "primary_color", Format: "color"}}}
	if _, err := form.New(contract); err == nil || !strings.HasPrefix(err.Error(), "form:") {
		t.Fatalf("expected form error, got %v", err)
	}
}

func TestAttach_BindsEveryPickerOnce(t *testing.T) {
	f, binder, _ := newAttachedForm(t)

	if binder.Len() != 10 {
		t.Fatalf("expected 10 swatches, got %d", binder.Len())
	}
	if err := f.Attach(binder); err != nil {
		t.Fatalf("second attach: %v", err)
	}
	if binder.Len() != 10 {
		t.Fatalf("second attach added swatches: %d", binder.Len())
	}
	if err := f.Attach(nil); err == nil {
		t.Fatalf("expected error for nil binder")
	}
}

func TestAttach_SkipsNonPickerFields(t *testing.T) {
	contract := schema.DefaultContract()
	contract.Fields = append(contract.Fields, schema.FieldSpec{Name: "tagline", Default: "hello"})
	f, err := form.New(contract)
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	binder := preview.NewBinder()
	if err := f.Attach(binder); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if _, ok := binder.Swatch("id_tagline"); ok {
		t.Fatalf("text field should not get a swatch")
	}
	if binder.Len() != 10 {
		t.Fatalf("expected 10 swatches, got %d", binder.Len())
	}
}

func TestGenerate_WritesPaletteAndRefreshesPreviews(t *testing.T) {
	f, binder, notifier := newAttachedForm(t)
	f.Primary().Input.Type("#4361ee")

	outcome := f.Generate()
	if !outcome.OK() {
		t.Fatalf("generate failed: %v", outcome.Err)
	}

	got := map[string]string{
		"secondary": f.Secondary().Value(),
		"accent":    f.Accent().Value(),
		"swatch-p":  mustSwatch(t, binder, "id_primary_color").Color(),
		"swatch-s":  mustSwatch(t, binder, "id_secondary_color").Color(),
		"swatch-a":  mustSwatch(t, binder, "id_accent_color").Color(),
	}
	want := map[string]string{
		"secondary": "#bc9e11",
		"accent":    "#9339c6",
		"swatch-p":  "#4361ee",
		"swatch-s":  "#bc9e11",
		"swatch-a":  "#9339c6",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("generate mismatch (-want +got):\n%s", diff)
	}

	wantMsgs := []form.Message{{Level: form.LevelSuccess, Text: palette.MessageSuccess}}
	if diff := cmp.Diff(wantMsgs, notifier.Messages()); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_InvalidPrimaryLeavesFieldsUntouched(t *testing.T) {
	for _, primary := range []string{"", "#abc", "4361ee", "#zzzzzz", "#4361ee0"} {
		t.Run(primary, func(t *testing.T) {
			f, binder, notifier := newAttachedForm(t)
			f.Primary().Input.Type(primary)
			before := f.Values()
			beforeSwatches := binder.Colors()

			outcome := f.Generate()
			if outcome.OK() {
				t.Fatalf("expected failure for %q", primary)
			}
			if !errors.Is(outcome.Err, palette.ErrInvalidPrimaryColor) {
				t.Fatalf("expected invalid primary error, got %v", outcome.Err)
			}
			if diff := cmp.Diff(before, f.Values()); diff != "" {
				t.Fatalf("fields changed (-before +after):\n%s", diff)
			}
			if diff := cmp.Diff(beforeSwatches, binder.Colors()); diff != "" {
				t.Fatalf("swatches changed (-before +after):\n%s", diff)
			}
			last, ok := notifier.Last()
			if !ok || last.Text != palette.MessageInvalidPrimary || last.Level != form.LevelError {
				t.Fatalf("unexpected message %+v", last)
			}
		})
	}
}

func TestGenerate_WithoutBinder(t *testing.T) {
	f, err := form.New(schema.DefaultContract())
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	f.Primary().Input.SetValue("#000050")
	outcome := f.Generate()
	if !outcome.OK() || f.Secondary().Value() != "#ffffaf" || f.Accent().Value() != "#500028" {
		t.Fatalf("unexpected outcome %+v values %v", outcome, f.Values())
	}
}

func TestGenerate_CustomGenerator(t *testing.T) {
	gen := palette.NewGenerator(palette.WithAccent(palette.Complementary))
	f, err := form.New(schema.DefaultContract(), form.WithGenerator(gen))
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	f.Primary().Input.SetValue("#4361ee")
	f.Generate()
	if f.Accent().Value() != "#bc9e11" {
		t.Fatalf("expected custom accent, got %q", f.Accent().Value())
	}
}

func TestSetValues_NormalisesAndRefreshes(t *testing.T) {
	f, binder, _ := newAttachedForm(t)
	f.SetValues(map[string]string{
		"secondary_color": "bc9e11",
		"text_color":      "#111111",
		"unknown":         "#ffffff",
	})

	if got := f.Secondary().Value(); got != "#bc9e11" {
		t.Fatalf("expected normalised secondary, got %q", got)
	}
	if got := mustSwatch(t, binder, "id_text_color").Color(); got != "#111111" {
		t.Fatalf("expected refreshed swatch, got %q", got)
	}
}

func TestSetValues_KeepsPrimaryRaw(t *testing.T) {
	for _, primary := range []string{"4361ee", " #4361ee ", "#4361ee "} {
		t.Run(primary, func(t *testing.T) {
			f, binder, notifier := newAttachedForm(t)
			f.SetValues(map[string]string{"primary_color": primary})
			if got := f.Primary().Value(); got != primary {
				t.Fatalf("expected primary kept as %q, got %q", primary, got)
			}

			before := f.Values()
			beforeSwatches := binder.Colors()
			outcome := f.Generate()
			if !errors.Is(outcome.Err, palette.ErrInvalidPrimaryColor) {
				t.Fatalf("expected invalid primary error, got %v", outcome.Err)
			}
			if diff := cmp.Diff(before, f.Values()); diff != "" {
				t.Fatalf("fields changed (-before +after):\n%s", diff)
			}
			if diff := cmp.Diff(beforeSwatches, binder.Colors()); diff != "" {
				t.Fatalf("swatches changed (-before +after):\n%s", diff)
			}
			if last, ok := notifier.Last(); !ok || last.Text != palette.MessageInvalidPrimary {
				t.Fatalf("unexpected message %+v", last)
			}
		})
	}
}

func TestView_GroupsRowsBySection(t *testing.T) {
	f, _, _ := newAttachedForm(t)
	msg := form.Message{Level: form.LevelSuccess, Text: palette.MessageSuccess}
	view := f.View(msg)

	var titles []string
	for _, section := range view.Sections {
		titles = append(titles, section.Title)
	}
	wantTitles := []string{
		"Brand Colors - Primary Palette",
		"Brand Colors - UI & Text",
		"Brand Colors - Semantic Colors",
	}
	if diff := cmp.Diff(wantTitles, titles); diff != "" {
		t.Fatalf("section titles mismatch (-want +got):\n%s", diff)
	}

	row := view.Sections[0].Rows[0]
	if row.ID != "id_primary_color" || !row.Picker || row.Role != "primary" {
		t.Fatalf("unexpected first row %+v", row)
	}
	if !strings.HasSuffix(row.SwatchStyle, "background-color: #2563eb;") {
		t.Fatalf("unexpected swatch style %q", row.SwatchStyle)
	}
	if view.ActionLabel != form.ActionGenerate || view.PrimaryID != "id_primary_color" {
		t.Fatalf("unexpected view header %+v", view)
	}
	if diff := cmp.Diff([]form.Message{msg}, view.Messages); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestView_UndeclaredSectionGoesLast(t *testing.T) {
	contract := schema.DefaultContract()
	contract.Fields = append(contract.Fields, schema.FieldSpec{Name: "tagline", Section: "missing"})
	f, err := form.New(contract)
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	view := f.View()
	last := view.Sections[len(view.Sections)-1]
	if last.Name != "" || len(last.Rows) != 1 || last.Rows[0].Picker {
		t.Fatalf("unexpected trailing section %+v", last)
	}
	if last.Rows[0].SwatchStyle != "" {
		t.Fatalf("text rows carry no swatch style")
	}
}

func TestView_Preview(t *testing.T) {
	f := testsupport.NewForm(t)
	view := f.View()
	if !view.Preview.Ready || len(view.Preview.Chips) != 6 {
		t.Fatalf("expected ready preview with six chips, got %+v", view.Preview)
	}
	if view.Preview.Chips[5] != (form.Chip{Label: "Error", Color: "#ef4444"}) {
		t.Fatalf("unexpected last chip %+v", view.Preview.Chips[5])
	}
	if view.Preview.GradientFrom != "#2563eb" || view.Preview.GradientTo != "#7c3aed" {
		t.Fatalf("unexpected gradient %+v", view.Preview)
	}

	f.SetValues(map[string]string{"secondary_color": ""})
	if f.View().Preview.Ready {
		t.Fatalf("preview should wait for the secondary colour")
	}
}

func TestView_PreviewSkipsUnparsableValues(t *testing.T) {
	f := testsupport.NewForm(t)
	f.SetValues(map[string]string{
		"secondary_color": "red; background:url(x)",
		"accent_color":    "#F59E0B",
	})

	pv := f.View().Preview
	if !pv.Ready {
		t.Fatalf("preview should be ready while both fields hold a value")
	}
	if pv.GradientFrom != "" || pv.GradientTo != "" {
		t.Fatalf("gradient should be empty, got %+v", pv)
	}
	var labels []string
	for _, chip := range pv.Chips {
		labels = append(labels, chip.Label)
	}
	if diff := cmp.Diff([]string{"Primary", "Accent", "Success", "Warning", "Error"}, labels); diff != "" {
		t.Fatalf("chip labels mismatch (-want +got):\n%s", diff)
	}
	if pv.Chips[1].Color != "#f59e0b" {
		t.Fatalf("expected canonical accent chip, got %q", pv.Chips[1].Color)
	}
}

func mustSwatch(t *testing.T, binder *preview.Binder, id string) *preview.Swatch {
	t.Helper()
	swatch, ok := binder.Swatch(id)
	if !ok {
		t.Fatalf("no swatch for %s", id)
	}
	return swatch
}
