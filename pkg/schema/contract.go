package schema

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Role marks the fields the generate action reads and writes.
type Role string

const (
	RoleNone      Role = ""
	RolePrimary   Role = "primary"
	RoleSecondary Role = "secondary"
	RoleAccent    Role = "accent"
)

// FormatColor is the field format handled as a colour picker.
const FormatColor = "color"

// ClassColorPicker is the CSS class that tags colour inputs on the page.
const ClassColorPicker = "color-picker"

// IDPrefix follows the admin convention for input IDs ("id_<name>").
const IDPrefix = "id_"

// FieldSpec describes one input of the colour form.
type FieldSpec struct {
	Name        string   `json:"name" yaml:"name"`
	ID          string   `json:"id,omitempty" yaml:"id,omitempty"`
	Label       string   `json:"label,omitempty" yaml:"label,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Default     string   `json:"default,omitempty" yaml:"default,omitempty"`
	Format      string   `json:"format,omitempty" yaml:"format,omitempty"`
	Widget      string   `json:"widget,omitempty" yaml:"widget,omitempty"`
	Classes     []string `json:"classes,omitempty" yaml:"classes,omitempty"`
	Role        Role     `json:"role,omitempty" yaml:"role,omitempty"`
	Section     string   `json:"section,omitempty" yaml:"section,omitempty"`
}

// HasClass reports whether the field carries class.
func (f FieldSpec) HasClass(class string) bool {
	return slices.Contains(f.Classes, class)
}

// Section groups fields into a fieldset.
type Section struct {
	Name      string   `json:"name" yaml:"name"`
	Title     string   `json:"title,omitempty" yaml:"title,omitempty"`
	Collapsed bool     `json:"collapsed,omitempty" yaml:"collapsed,omitempty"`
	Classes   []string `json:"classes,omitempty" yaml:"classes,omitempty"`
}

// Contract is the field layout of a colour form.
type Contract struct {
	Title    string      `json:"title,omitempty" yaml:"title,omitempty"`
	Sections []Section   `json:"sections,omitempty" yaml:"sections,omitempty"`
	Fields   []FieldSpec `json:"fields" yaml:"fields"`
}

// Field returns the field with the given name.
func (c Contract) Field(name string) (FieldSpec, bool) {
	for _, field := range c.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return FieldSpec{}, false
}

// FieldByRole returns the field carrying role.
func (c Contract) FieldByRole(role Role) (FieldSpec, bool) {
	for _, field := range c.Fields {
		if field.Role == role {
			return field, true
		}
	}
	return FieldSpec{}, false
}

// Normalize fills derived attributes in place: IDs, labels, the colour
// format of role fields and unknown section references.
func (c *Contract) Normalize() {
	if c == nil {
		return
	}
	for idx := range c.Fields {
		field := &c.Fields[idx]
		field.Name = strings.TrimSpace(field.Name)
		field.ID = strings.TrimSpace(field.ID)
		if field.ID == "" && field.Name != "" {
			field.ID = IDPrefix + field.Name
		}
		if strings.TrimSpace(field.Label) == "" {
			field.Label = DefaultLabeler(field.Name)
		}
		field.Role = Role(strings.ToLower(strings.TrimSpace(string(field.Role))))
		field.Format = strings.ToLower(strings.TrimSpace(field.Format))
		if field.Role != RoleNone && field.Format == "" {
			field.Format = FormatColor
		}
	}
	for idx := range c.Sections {
		section := &c.Sections[idx]
		section.Name = strings.TrimSpace(section.Name)
		if section.Title == "" {
			section.Title = DefaultLabeler(section.Name)
		}
	}
}

// Validate checks that names and IDs are unique and that each of the three
// roles is assigned to exactly one field.
func (c Contract) Validate() error {
	if len(c.Fields) == 0 {
		return errors.New("schema: contract defines no fields")
	}

	names := make(map[string]struct{}, len(c.Fields))
	ids := make(map[string]struct{}, len(c.Fields))
	roles := make(map[Role]string, 3)

	for idx, field := range c.Fields {
		if field.Name == "" {
			return fmt.Errorf("schema: field at index %d has no name", idx)
		}
		if _, dup := names[field.Name]; dup {
			return fmt.Errorf("schema: duplicate field name %q", field.Name)
		}
		names[field.Name] = struct{}{}

		if field.ID == "" {
			return fmt.Errorf("schema: field %q has no id", field.Name)
		}
		if _, dup := ids[field.ID]; dup {
			return fmt.Errorf("schema: duplicate field id %q", field.ID)
		}
		ids[field.ID] = struct{}{}

		switch field.Role {
		case RoleNone:
		case RolePrimary, RoleSecondary, RoleAccent:
			if other, dup := roles[field.Role]; dup {
				return fmt.Errorf("schema: role %q assigned to both %q and %q", field.Role, other, field.Name)
			}
			roles[field.Role] = field.Name
		default:
			return fmt.Errorf("schema: field %q has unknown role %q", field.Name, field.Role)
		}
	}

	for _, role := range []Role{RolePrimary, RoleSecondary, RoleAccent} {
		if _, ok := roles[role]; !ok {
			return fmt.Errorf("schema: no field has role %q", role)
		}
	}
	return nil
}

// SectionFields returns the fields of section in declaration order. Fields
// whose section is not declared are grouped under the empty name.
func (c Contract) SectionFields(section string) []FieldSpec {
	declared := make(map[string]struct{}, len(c.Sections))
	for _, s := range c.Sections {
		declared[s.Name] = struct{}{}
	}
	var out []FieldSpec
	for _, field := range c.Fields {
		name := field.Section
		if _, ok := declared[name]; !ok {
			name = ""
		}
		if name == section {
			out = append(out, field)
		}
	}
	return out
}

// Clone returns a deep copy.
func (c Contract) Clone() Contract {
	out := Contract{Title: c.Title}
	if len(c.Sections) > 0 {
		out.Sections = make([]Section, len(c.Sections))
		for idx, section := range c.Sections {
			section.Classes = slices.Clone(section.Classes)
			out.Sections[idx] = section
		}
	}
	if len(c.Fields) > 0 {
		out.Fields = make([]FieldSpec, len(c.Fields))
		for idx, field := range c.Fields {
			field.Classes = slices.Clone(field.Classes)
			out.Fields[idx] = field
		}
	}
	return out
}
