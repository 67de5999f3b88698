package preview

import (
	"slices"
	"sync"
)

// Field is the observable side of a colour input. OnInput handlers run
// synchronously every time the field fires an input event.
type Field interface {
	ID() string
	Value() string
	OnInput(handler func(value string))
	Activate()
}

// InputOption configures an Input.
type InputOption func(*Input)

// WithName sets the form name submitted for the input.
func WithName(name string) InputOption {
	return func(in *Input) {
		in.name = name
	}
}

// WithClasses sets the CSS classes carried by the input.
func WithClasses(classes ...string) InputOption {
	return func(in *Input) {
		in.classes = append([]string(nil), classes...)
	}
}

// WithActivator sets the hook run when the input is activated (the native
// picker opening).
func WithActivator(fn func()) InputOption {
	return func(in *Input) {
		in.activator = fn
	}
}

// Input is an in-memory colour input. Programmatic writes through SetValue do
// not notify observers; user edits through Type do.
type Input struct {
	mu        sync.RWMutex
	id        string
	name      string
	classes   []string
	value     string
	handlers  []func(string)
	activator func()
	activated int
}

var _ Field = (*Input)(nil)

// NewInput builds an input with an initial value.
func NewInput(id, value string, options ...InputOption) *Input {
	in := &Input{id: id, name: id, value: value}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(in)
	}
	return in
}

func (in *Input) ID() string {
	return in.id
}

func (in *Input) Name() string {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return in.name
}

// Classes returns a copy of the CSS classes.
func (in *Input) Classes() []string {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return slices.Clone(in.classes)
}

// HasClass reports whether the input carries class.
func (in *Input) HasClass(class string) bool {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return slices.Contains(in.classes, class)
}

func (in *Input) Value() string {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return in.value
}

// SetValue writes the value without firing an input event.
func (in *Input) SetValue(value string) {
	in.mu.Lock()
	in.value = value
	in.mu.Unlock()
}

// Type simulates a user edit: the value changes and an input event fires.
func (in *Input) Type(value string) {
	in.SetValue(value)
	in.Dispatch()
}

// Dispatch fires an input event carrying the current value.
func (in *Input) Dispatch() {
	in.mu.RLock()
	value := in.value
	handlers := slices.Clone(in.handlers)
	in.mu.RUnlock()

	for _, handler := range handlers {
		handler(value)
	}
}

func (in *Input) OnInput(handler func(value string)) {
	if handler == nil {
		return
	}
	in.mu.Lock()
	in.handlers = append(in.handlers, handler)
	in.mu.Unlock()
}

// Activate counts the activation and runs the activator hook, if any.
func (in *Input) Activate() {
	in.mu.Lock()
	in.activated++
	activator := in.activator
	in.mu.Unlock()

	if activator != nil {
		activator()
	}
}

// Activations returns how many times the input was activated.
func (in *Input) Activations() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return in.activated
}

// Observers returns the number of registered input handlers.
func (in *Input) Observers() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.handlers)
}
