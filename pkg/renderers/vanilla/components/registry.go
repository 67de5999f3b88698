package components

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/goliatone/go-palette/pkg/form"
	rendertemplate "github.com/goliatone/go-palette/pkg/render/template"
)

// Renderer writes the control of one colour or text row. The surrounding
// row chrome (label, help text) is added by the vanilla renderer.
type Renderer func(buf *bytes.Buffer, row form.RowView, data ComponentData) error

// ComponentData is handed to a Renderer for every row.
type ComponentData struct {
	Template rendertemplate.TemplateRenderer
	// Partials are the theme's template overrides, keyed by PartialColorPicker
	// and friends.
	Partials map[string]string
	// Config is per-row; the primary row gets ConfigAction.
	Config map[string]any
}

// Script is a page script. Src is an asset key such as the palette runtime or
// an absolute URL; Inline is used when Src is empty.
type Script struct {
	Src    string
	Inline string
	Async  bool
	Defer  bool
	Module bool
}

func (s Script) key() string {
	if s.Src != "" {
		return "src:" + s.Src
	}
	return "inline:" + s.Inline
}

// Descriptor is a registered component: its renderer plus the stylesheets
// and scripts the page needs once any row uses it.
type Descriptor struct {
	Name        string
	Renderer    Renderer
	Stylesheets []string
	Scripts     []Script
}

func (d Descriptor) clone() Descriptor {
	d.Stylesheets = slices.Clone(d.Stylesheets)
	d.Scripts = slices.Clone(d.Scripts)
	return d
}

// Registry maps widget names (NameColorPicker, NameText) to descriptors.
// Lookups are case-insensitive.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Descriptor
}

// New returns a registry with nothing registered. Most callers want
// NewDefaultRegistry.
func New() *Registry {
	return &Registry{entries: make(map[string]Descriptor)}
}

// Register stores descriptor under name. A later call with the same name
// wins, which is how hosts swap the built-in picker.
func (r *Registry) Register(name string, descriptor Descriptor) error {
	key := componentKey(name)
	if key == "" {
		return errors.New("components: component name is required")
	}
	if descriptor.Renderer == nil {
		return fmt.Errorf("components: renderer for %q is nil", key)
	}

	descriptor.Name = key
	r.mu.Lock()
	r.entries[key] = descriptor.clone()
	r.mu.Unlock()
	return nil
}

// MustRegister panics when Register fails.
func (r *Registry) MustRegister(name string, descriptor Descriptor) {
	if err := r.Register(name, descriptor); err != nil {
		panic(err)
	}
}

// Descriptor returns a copy of the component registered as name.
func (r *Registry) Descriptor(name string) (Descriptor, bool) {
	r.mu.RLock()
	descriptor, ok := r.entries[componentKey(name)]
	r.mu.RUnlock()
	if !ok {
		return Descriptor{}, false
	}
	return descriptor.clone(), true
}

// Names lists registered components alphabetically.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Assets returns what the page must include for the components in used: each
// stylesheet and script once, in the order used lists them. Unknown names
// contribute nothing.
func (r *Registry) Assets(used []string) ([]string, []Script) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var set assetSet
	for _, name := range used {
		if descriptor, ok := r.entries[componentKey(name)]; ok {
			set.add(descriptor)
		}
	}
	return set.stylesheets, set.scripts
}

// assetSet accumulates assets without duplicates.
type assetSet struct {
	seen        map[string]struct{}
	stylesheets []string
	scripts     []Script
}

func (s *assetSet) add(d Descriptor) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	for _, href := range d.Stylesheets {
		if href != "" && s.first("css:"+href) {
			s.stylesheets = append(s.stylesheets, href)
		}
	}
	for _, script := range d.Scripts {
		if s.first(script.key()) {
			s.scripts = append(s.scripts, script)
		}
	}
}

func (s *assetSet) first(key string) bool {
	if _, dup := s.seen[key]; dup {
		return false
	}
	s.seen[key] = struct{}{}
	return true
}

func componentKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
