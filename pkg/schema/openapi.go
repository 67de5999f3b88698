package schema

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// OpenAPI extensions read from request body properties.
const (
	ExtensionColorRole = "x-color-role"
	ExtensionSection   = "x-color-section"
	ExtensionOrder     = "x-order"
)

var roleFallbackNames = map[string]Role{
	"primary_color":   RolePrimary,
	"secondary_color": RoleSecondary,
	"accent_color":    RoleAccent,
}

// FromOpenAPI derives a contract from the request body of operationID. Every
// string property becomes a field; properties with format "color" or an
// x-color-role extension become colour pickers. Roles come from x-color-role
// and fall back to the primary_color/secondary_color/accent_color names.
func FromOpenAPI(ctx context.Context, data []byte, operationID string) (Contract, error) {
	if err := ctx.Err(); err != nil {
		return Contract{}, err
	}
	if len(data) == 0 {
		return Contract{}, errors.New("schema: openapi document is empty")
	}
	operationID = strings.TrimSpace(operationID)
	if operationID == "" {
		return Contract{}, errors.New("schema: operation id is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return Contract{}, fmt.Errorf("schema: load openapi document: %w", err)
	}

	operation := findOperation(doc, operationID)
	if operation == nil {
		return Contract{}, fmt.Errorf("schema: operation %q not found", operationID)
	}
	body := requestSchema(operation.RequestBody)
	if body == nil || len(body.Properties) == 0 {
		return Contract{}, fmt.Errorf("schema: operation %q has no request body properties", operationID)
	}

	contract := Contract{Title: strings.TrimSpace(operation.Summary)}
	sections := make(map[string]struct{})
	for _, name := range orderedProperties(body.Properties) {
		ref := body.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		spec, ok := fieldFromSchema(name, ref.Value)
		if !ok {
			continue
		}
		if spec.Section != "" {
			if _, seen := sections[spec.Section]; !seen {
				sections[spec.Section] = struct{}{}
				contract.Sections = append(contract.Sections, Section{Name: spec.Section})
			}
		}
		contract.Fields = append(contract.Fields, spec)
	}

	contract.Normalize()
	if err := contract.Validate(); err != nil {
		return Contract{}, fmt.Errorf("%w (operation %s)", err, operationID)
	}
	return contract, nil
}

func findOperation(doc *openapi3.T, operationID string) *openapi3.Operation {
	if doc == nil || doc.Paths == nil {
		return nil
	}
	for _, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for _, op := range item.Operations() {
			if op != nil && op.OperationID == operationID {
				return op
			}
		}
	}
	return nil
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func fieldFromSchema(name string, src *openapi3.Schema) (FieldSpec, bool) {
	if src.Type != nil && !src.Type.Is(openapi3.TypeString) {
		return FieldSpec{}, false
	}

	spec := FieldSpec{
		Name:        name,
		Label:       strings.TrimSpace(src.Title),
		Description: strings.TrimSpace(src.Description),
		Format:      strings.ToLower(strings.TrimSpace(src.Format)),
	}
	if value, ok := src.Default.(string); ok {
		spec.Default = value
	}
	if role, ok := stringExtension(src.Extensions, ExtensionColorRole); ok {
		spec.Role = Role(strings.ToLower(role))
	} else if role, ok := roleFallbackNames[name]; ok && spec.Format == FormatColor {
		spec.Role = role
	}
	if section, ok := stringExtension(src.Extensions, ExtensionSection); ok {
		spec.Section = section
	}
	if spec.Role != RoleNone || spec.Format == FormatColor {
		spec.Format = FormatColor
		spec.Classes = []string{ClassColorPicker}
	}
	return spec, true
}

func orderedProperties(props openapi3.Schemas) []string {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	order := func(name string) float64 {
		ref := props[name]
		if ref == nil || ref.Value == nil {
			return math.MaxFloat64
		}
		if value, ok := numberExtension(ref.Value.Extensions, ExtensionOrder); ok {
			return value
		}
		return math.MaxFloat64
	}
	sort.SliceStable(names, func(i, j int) bool {
		oi, oj := order(names[i]), order(names[j])
		if oi == oj {
			return names[i] < names[j]
		}
		return oi < oj
	})
	return names
}

func stringExtension(ext map[string]any, key string) (string, bool) {
	raw, ok := ext[key]
	if !ok {
		return "", false
	}
	value, ok := raw.(string)
	value = strings.TrimSpace(value)
	return value, ok && value != ""
}

func numberExtension(ext map[string]any, key string) (float64, bool) {
	switch v := ext[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
