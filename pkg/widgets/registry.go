package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-palette/pkg/schema"
)

// Built-in widget identifiers exposed by the registry.
const (
	WidgetColorPicker = "color-picker"
	WidgetText        = "text"
)

// Matcher decides whether a widget should handle the supplied field.
type Matcher func(field schema.FieldSpec) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects widgets for fields based on explicit hints or registered
// matchers. Higher priority wins; ties fall back to registration order. An
// empty registry never resolves a widget.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a matcher with the provided name and priority. Higher
// priority values take precedence.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget name for a field. An explicit Widget on the
// spec is honoured before matcher evaluation.
func (r *Registry) Resolve(field schema.FieldSpec) (string, bool) {
	if explicit := strings.TrimSpace(field.Widget); explicit != "" {
		return explicit, true
	}
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.name, true
		}
	}
	return "", false
}

// IsColorPicker reports whether field resolves to the colour picker widget.
func (r *Registry) IsColorPicker(field schema.FieldSpec) bool {
	widget, ok := r.Resolve(field)
	return ok && widget == WidgetColorPicker
}

// Decorate writes the resolved widget into every field that has none.
func (r *Registry) Decorate(contract *schema.Contract) {
	if r == nil || contract == nil {
		return
	}
	for idx := range contract.Fields {
		field := &contract.Fields[idx]
		if strings.TrimSpace(field.Widget) != "" {
			continue
		}
		if widget, ok := r.Resolve(*field); ok {
			field.Widget = widget
		}
	}
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetColorPicker, 90, func(field schema.FieldSpec) bool {
		if field.Role != schema.RoleNone {
			return true
		}
		if field.HasClass(schema.ClassColorPicker) {
			return true
		}
		return strings.EqualFold(strings.TrimSpace(field.Format), schema.FormatColor)
	})

	r.Register(WidgetText, 0, func(schema.FieldSpec) bool {
		return true
	})
}
