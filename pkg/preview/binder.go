package preview

import (
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Style is the fixed presentation of a swatch.
type Style struct {
	Width         string
	Height        string
	BorderRadius  string
	Border        string
	MarginLeft    string
	Display       string
	VerticalAlign string
	Cursor        string
}

// DefaultStyle is the 30px square swatch placed next to each picker.
var DefaultStyle = Style{
	Width:         "30px",
	Height:        "30px",
	BorderRadius:  "4px",
	Border:        "1px solid #ccc",
	MarginLeft:    "10px",
	Display:       "inline-block",
	VerticalAlign: "middle",
	Cursor:        "pointer",
}

// CSS renders the style as an inline declaration list without the
// background colour.
func (s Style) CSS() string {
	parts := []string{
		"width: " + s.Width,
		"height: " + s.Height,
		"border-radius: " + s.BorderRadius,
		"border: " + s.Border,
		"margin-left: " + s.MarginLeft,
		"display: " + s.Display,
		"vertical-align: " + s.VerticalAlign,
		"cursor: " + s.Cursor,
	}
	return strings.Join(parts, "; ") + ";"
}

// Swatch mirrors the value of one bound field.
type Swatch struct {
	mu      sync.RWMutex
	fieldID string
	color   string
	style   Style
	field   Field
}

func (s *Swatch) FieldID() string {
	return s.fieldID
}

// Color is the last value pushed to the swatch. It is not validated; a
// partially typed value is a legitimate transient state.
func (s *Swatch) Color() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.color
}

func (s *Swatch) Style() Style {
	return s.style
}

// InlineStyle renders the style plus background colour.
func (s *Swatch) InlineStyle() string {
	return s.style.CSS() + " background-color: " + s.Color() + ";"
}

// Click forwards activation to the bound field.
func (s *Swatch) Click() {
	if s.field != nil {
		s.field.Activate()
	}
}

func (s *Swatch) set(value string) {
	s.mu.Lock()
	s.color = value
	s.mu.Unlock()
}

// Option configures a Binder.
type Option func(*Binder)

// WithStyle overrides the swatch style applied to new bindings.
func WithStyle(style Style) Option {
	return func(b *Binder) {
		b.style = style
	}
}

// WithLogger attaches a logger. The default discards output.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Binder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// Binder keeps one swatch per bound field. Fields are never discovered
// implicitly: callers bind each field explicitly, including fields that
// appear after startup.
type Binder struct {
	mu       sync.RWMutex
	swatches map[string]*Swatch
	order    []string
	style    Style
	logger   *zap.Logger
}

// NewBinder returns an empty binder.
func NewBinder(options ...Option) *Binder {
	b := &Binder{
		swatches: make(map[string]*Swatch),
		style:    DefaultStyle,
		logger:   zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

// Bind creates the swatch for field, seeds it with the current value and
// subscribes it to input events. Binding an already bound field ID returns
// the existing swatch without subscribing again.
func (b *Binder) Bind(field Field) (*Swatch, error) {
	if field == nil {
		return nil, errors.New("preview: field is required")
	}
	id := strings.TrimSpace(field.ID())
	if id == "" {
		return nil, errors.New("preview: field id is required")
	}

	b.mu.Lock()
	if existing, ok := b.swatches[id]; ok {
		b.mu.Unlock()
		b.logger.Debug("field already bound", zap.String("field", id))
		return existing, nil
	}
	swatch := &Swatch{
		fieldID: id,
		color:   field.Value(),
		style:   b.style,
		field:   field,
	}
	b.swatches[id] = swatch
	b.order = append(b.order, id)
	b.mu.Unlock()

	field.OnInput(func(value string) {
		if b.current(id) != swatch {
			return
		}
		swatch.set(value)
	})

	b.logger.Debug("bound preview", zap.String("field", id), zap.String("color", swatch.Color()))
	return swatch, nil
}

// MustBind is Bind that panics on error.
func (b *Binder) MustBind(field Field) *Swatch {
	swatch, err := b.Bind(field)
	if err != nil {
		panic(err)
	}
	return swatch
}

// Unbind drops the swatch for id. Later input events on the field are
// ignored. It reports whether a swatch was removed.
func (b *Binder) Unbind(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.swatches[id]; !ok {
		return false
	}
	delete(b.swatches, id)
	for idx, candidate := range b.order {
		if candidate == id {
			b.order = append(b.order[:idx], b.order[idx+1:]...)
			break
		}
	}
	return true
}

// Swatch returns the swatch bound to id.
func (b *Binder) Swatch(id string) (*Swatch, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	swatch, ok := b.swatches[id]
	return swatch, ok
}

// Swatches returns the bound swatches in bind order.
func (b *Binder) Swatches() []*Swatch {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]*Swatch, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.swatches[id])
	}
	return out
}

// Len returns the number of bound fields.
func (b *Binder) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.swatches)
}

// Refresh re-reads every bound field and pushes its value to the swatch.
// Needed after programmatic writes, which fire no input event.
func (b *Binder) Refresh() {
	for _, swatch := range b.Swatches() {
		swatch.set(swatch.field.Value())
	}
}

// Colors returns a field ID -> swatch colour snapshot.
func (b *Binder) Colors() map[string]string {
	swatches := b.Swatches()
	out := make(map[string]string, len(swatches))
	for _, swatch := range swatches {
		out[swatch.fieldID] = swatch.Color()
	}
	return out
}

func (b *Binder) current(id string) *Swatch {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.swatches[id]
}
