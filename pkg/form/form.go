package form

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/goliatone/go-palette/pkg/color"
	"github.com/goliatone/go-palette/pkg/palette"
	"github.com/goliatone/go-palette/pkg/preview"
	"github.com/goliatone/go-palette/pkg/schema"
	"github.com/goliatone/go-palette/pkg/widgets"
)

// ActionGenerate is the label of the palette action button.
const ActionGenerate = "Generate Color Palette"

// Option configures a Form.
type Option func(*Form)

// WithWidgetRegistry overrides the registry deciding which fields are colour
// pickers.
func WithWidgetRegistry(registry *widgets.Registry) Option {
	return func(f *Form) {
		if registry != nil {
			f.widgets = registry
		}
	}
}

// WithNotifier sets where action messages are surfaced.
func WithNotifier(notifier Notifier) Option {
	return func(f *Form) {
		if notifier != nil {
			f.notifier = notifier
		}
	}
}

// WithGenerator swaps the palette generator.
func WithGenerator(generator *palette.Generator) Option {
	return func(f *Form) {
		if generator != nil {
			f.generator = generator
		}
	}
}

// WithLogger attaches a logger. The default discards output.
func WithLogger(logger *zap.Logger) Option {
	return func(f *Form) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// Field pairs a contract entry with its live input.
type Field struct {
	Spec   schema.FieldSpec
	Input  *preview.Input
	Widget string
}

// Picker reports whether the field is a colour picker.
func (f *Field) Picker() bool {
	return f.Widget == widgets.WidgetColorPicker
}

// Value returns the input's current value.
func (f *Field) Value() string {
	return f.Input.Value()
}

// Form is a colour form built from a contract. Fields are discovered once,
// in New; later additions need an explicit Binder.Bind by the caller.
type Form struct {
	mu        sync.Mutex
	contract  schema.Contract
	fields    []*Field
	byName    map[string]*Field
	primary   *Field
	secondary *Field
	accent    *Field
	binder    *preview.Binder
	generator *palette.Generator
	notifier  Notifier
	widgets   *widgets.Registry
	logger    *zap.Logger
}

// New builds one input per contract field, seeded with the field default.
// The contract must assign the primary, secondary and accent roles.
func New(contract schema.Contract, options ...Option) (*Form, error) {
	contract = contract.Clone()
	contract.Normalize()
	if err := contract.Validate(); err != nil {
		return nil, fmt.Errorf("form: %w", err)
	}

	f := &Form{
		contract:  contract,
		byName:    make(map[string]*Field, len(contract.Fields)),
		generator: palette.NewGenerator(),
		notifier:  discardNotifier{},
		widgets:   widgets.NewRegistry(),
		logger:    zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}

	for _, spec := range contract.Fields {
		widget, _ := f.widgets.Resolve(spec)
		field := &Field{
			Spec:   spec,
			Widget: widget,
			Input: preview.NewInput(spec.ID, spec.Default,
				preview.WithName(spec.Name),
				preview.WithClasses(spec.Classes...),
			),
		}
		f.fields = append(f.fields, field)
		f.byName[spec.Name] = field

		switch spec.Role {
		case schema.RolePrimary:
			f.primary = field
		case schema.RoleSecondary:
			f.secondary = field
		case schema.RoleAccent:
			f.accent = field
		}
	}
	return f, nil
}

// MustNew is New that panics on error.
func MustNew(contract schema.Contract, options ...Option) *Form {
	f, err := New(contract, options...)
	if err != nil {
		panic(err)
	}
	return f
}

// Attach binds a preview swatch to every colour picker, in contract order.
// Attaching a second time is a no-op.
func (f *Form) Attach(binder *preview.Binder) error {
	if binder == nil {
		return errors.New("form: binder is required")
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.binder != nil {
		return nil
	}
	for _, field := range f.fields {
		if !field.Picker() {
			continue
		}
		if _, err := binder.Bind(field.Input); err != nil {
			return fmt.Errorf("form: bind %s: %w", field.Spec.Name, err)
		}
	}
	f.binder = binder
	f.logger.Debug("attached previews", zap.Int("swatches", binder.Len()))
	return nil
}

// Binder returns the attached binder, or nil before Attach.
func (f *Form) Binder() *preview.Binder {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.binder
}

// Contract returns a copy of the normalised contract.
func (f *Form) Contract() schema.Contract {
	return f.contract.Clone()
}

// Fields returns the fields in contract order.
func (f *Form) Fields() []*Field {
	return append([]*Field(nil), f.fields...)
}

// Field looks a field up by name.
func (f *Form) Field(name string) (*Field, bool) {
	field, ok := f.byName[name]
	return field, ok
}

func (f *Form) Primary() *Field   { return f.primary }
func (f *Form) Secondary() *Field { return f.secondary }
func (f *Form) Accent() *Field    { return f.accent }

// Values returns field name -> current value.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.fields))
	for _, field := range f.fields {
		out[field.Spec.Name] = field.Value()
	}
	return out
}

// SetValues writes values keyed by field name, as the admin does on load.
// Colour pickers other than the primary get a missing '#' prefixed. The
// primary is written as given since Generate validates it verbatim. Unknown
// names are ignored. Previews are refreshed when a binder is attached.
func (f *Form) SetValues(values map[string]string) {
	for name, value := range values {
		field, ok := f.byName[name]
		if !ok {
			continue
		}
		if field.Picker() && field != f.primary {
			value = color.Normalize(value)
		}
		field.Input.SetValue(value)
	}
	if binder := f.Binder(); binder != nil {
		binder.Refresh()
	}
}
