package schema_test

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-palette/pkg/schema"
)

func TestDefaultContract_IsValid(t *testing.T) {
	contract := schema.DefaultContract()
	if err := contract.Validate(); err != nil {
		t.Fatalf("default contract invalid: %v", err)
	}

	primary, ok := contract.FieldByRole(schema.RolePrimary)
	if !ok || primary.ID != "id_primary_color" || primary.Label != "Primary Color" {
		t.Fatalf("unexpected primary field: %+v", primary)
	}
	secondary, _ := contract.FieldByRole(schema.RoleSecondary)
	accent, _ := contract.FieldByRole(schema.RoleAccent)
	if secondary.ID != "id_secondary_color" || accent.ID != "id_accent_color" {
		t.Fatalf("unexpected role ids: %s %s", secondary.ID, accent.ID)
	}

	var names []string
	for _, field := range contract.SectionFields(schema.SectionUIText) {
		names = append(names, field.Name)
	}
	if diff := cmp.Diff([]string{"light_color", "dark_color", "text_color"}, names); diff != "" {
		t.Fatalf("section fields mismatch (-want +got):\n%s", diff)
	}
	for _, field := range contract.Fields {
		if !field.HasClass(schema.ClassColorPicker) {
			t.Fatalf("field %s is not tagged as a colour picker", field.Name)
		}
	}
}

const yamlContract = `
title: Brand
sections:
  - name: palette
fields:
  - name: brand
    role: Primary
    default: "#4361ee"
    section: palette
  - name: brand_two
    id: custom_secondary
    role: secondary
  - name: brand_three
    role: accent
    label: Highlight
  - name: footer_note
    format: text
`

func TestParse_YAML(t *testing.T) {
	contract, err := schema.Parse([]byte(yamlContract), "brand.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := []schema.FieldSpec{
		{Name: "brand", ID: "id_brand", Label: "Brand", Default: "#4361ee", Format: "color", Role: schema.RolePrimary, Section: "palette"},
		{Name: "brand_two", ID: "custom_secondary", Label: "Brand Two", Format: "color", Role: schema.RoleSecondary},
		{Name: "brand_three", ID: "id_brand_three", Label: "Highlight", Format: "color", Role: schema.RoleAccent},
		{Name: "footer_note", ID: "id_footer_note", Label: "Footer Note", Format: "text"},
	}
	if diff := cmp.Diff(want, contract.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if contract.Sections[0].Title != "Palette" {
		t.Fatalf("expected derived section title, got %q", contract.Sections[0].Title)
	}
}

func TestParse_JSON(t *testing.T) {
	raw := `{"fields":[
		{"name":"p","role":"primary"},
		{"name":"s","role":"secondary"},
		{"name":"a","role":"accent"}
	]}`
	contract, err := schema.Parse([]byte(raw), "inline.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(contract.Fields) != 3 || contract.Fields[0].ID != "id_p" {
		t.Fatalf("unexpected contract %+v", contract)
	}
}

func TestParse_RejectsBrokenContracts(t *testing.T) {
	cases := map[string]string{
		"empty":          "   ",
		"missing accent": "fields:\n  - {name: p, role: primary}\n  - {name: s, role: secondary}\n",
		"duplicate role": "fields:\n  - {name: p, role: primary}\n  - {name: q, role: primary}\n  - {name: s, role: secondary}\n  - {name: a, role: accent}\n",
		"duplicate id":   "fields:\n  - {name: p, role: primary, id: x}\n  - {name: s, role: secondary, id: x}\n  - {name: a, role: accent}\n",
		"unknown role":   "fields:\n  - {name: p, role: tertiary}\n",
		"not a document": "fields: [",
	}
	for name, raw := range cases {
		if _, err := schema.Parse([]byte(raw), name); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"forms/brand.yml": {Data: []byte(yamlContract)},
		"forms/brand.txt": {Data: []byte(yamlContract)},
	}
	if _, err := schema.LoadFS(fsys, "forms/brand.yml"); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := schema.LoadFS(fsys, "forms/brand.txt"); err == nil {
		t.Fatalf("expected unsupported extension to fail")
	}
	if _, err := schema.LoadFS(fsys, "forms/missing.yaml"); err == nil {
		t.Fatalf("expected missing file to fail")
	}
}

const openAPIDoc = `
openapi: 3.0.3
info:
  title: Tenants
  version: 1.0.0
paths:
  /tenants/{id}/branding:
    put:
      operationId: updateBranding
      summary: Update branding
      requestBody:
        content:
          application/json:
            schema:
              $ref: '#/components/schemas/Branding'
      responses:
        '204':
          description: updated
components:
  schemas:
    Branding:
      type: object
      properties:
        primary_color:
          type: string
          format: color
          default: '#2563eb'
          x-order: 1
        highlight:
          type: string
          x-color-role: accent
          title: Highlight
          x-order: 3
        secondary_color:
          type: string
          format: color
          x-order: 2
          x-color-section: palette
        text_color:
          type: string
          format: color
        tagline:
          type: string
        logo_width:
          type: integer
`

func TestFromOpenAPI(t *testing.T) {
	contract, err := schema.FromOpenAPI(context.Background(), []byte(openAPIDoc), "updateBranding")
	if err != nil {
		t.Fatalf("from openapi: %v", err)
	}

	picker := []string{schema.ClassColorPicker}
	want := []schema.FieldSpec{
		{Name: "primary_color", ID: "id_primary_color", Label: "Primary Color", Default: "#2563eb", Format: "color", Classes: picker, Role: schema.RolePrimary},
		{Name: "secondary_color", ID: "id_secondary_color", Label: "Secondary Color", Format: "color", Classes: picker, Role: schema.RoleSecondary, Section: "palette"},
		{Name: "highlight", ID: "id_highlight", Label: "Highlight", Format: "color", Classes: picker, Role: schema.RoleAccent},
		{Name: "tagline", ID: "id_tagline", Label: "Tagline"},
		{Name: "text_color", ID: "id_text_color", Label: "Text Color", Format: "color", Classes: picker},
	}
	if diff := cmp.Diff(want, contract.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if contract.Title != "Update branding" {
		t.Fatalf("unexpected title %q", contract.Title)
	}
	if len(contract.Sections) != 1 || contract.Sections[0].Name != "palette" {
		t.Fatalf("unexpected sections %+v", contract.Sections)
	}
}

func TestFromOpenAPI_Errors(t *testing.T) {
	ctx := context.Background()
	if _, err := schema.FromOpenAPI(ctx, []byte(openAPIDoc), "missing"); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected missing operation error, got %v", err)
	}
	if _, err := schema.FromOpenAPI(ctx, nil, "updateBranding"); err == nil {
		t.Fatalf("expected empty document error")
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := schema.FromOpenAPI(cancelled, []byte(openAPIDoc), "updateBranding"); err == nil {
		t.Fatalf("expected cancelled context error")
	}
}
