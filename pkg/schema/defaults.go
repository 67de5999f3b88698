package schema

// Section names used by DefaultContract.
const (
	SectionPrimaryPalette = "primary_palette"
	SectionUIText         = "ui_text"
	SectionSemantic       = "semantic"
)

// DefaultContract returns the tenant branding form: ten colour pickers split
// across three collapsible sections, with the primary, secondary and accent
// fields carrying their roles.
func DefaultContract() Contract {
	picker := []string{ClassColorPicker}
	contract := Contract{
		Title: "Tenant Branding",
		Sections: []Section{
			{Name: SectionPrimaryPalette, Title: "Brand Colors - Primary Palette", Collapsed: true, Classes: []string{"color-palette-section"}},
			{Name: SectionUIText, Title: "Brand Colors - UI & Text", Collapsed: true, Classes: []string{"color-palette-section"}},
			{Name: SectionSemantic, Title: "Brand Colors - Semantic Colors", Collapsed: true, Classes: []string{"color-palette-section"}},
		},
		Fields: []FieldSpec{
			{Name: "primary_color", Default: "#2563eb", Role: RolePrimary, Section: SectionPrimaryPalette},
			{Name: "secondary_color", Default: "#7c3aed", Role: RoleSecondary, Section: SectionPrimaryPalette},
			{Name: "accent_color", Default: "#f59e0b", Role: RoleAccent, Section: SectionPrimaryPalette},
			{Name: "light_color", Default: "#eff6ff", Section: SectionUIText},
			{Name: "dark_color", Default: "#1e3a8a", Section: SectionUIText},
			{Name: "text_color", Default: "#1f2937", Section: SectionUIText},
			{Name: "success_color", Default: "#10b981", Section: SectionSemantic},
			{Name: "warning_color", Default: "#f59e0b", Section: SectionSemantic},
			{Name: "error_color", Default: "#ef4444", Section: SectionSemantic},
			{Name: "info_color", Default: "#3b82f6", Section: SectionSemantic},
		},
	}
	for idx := range contract.Fields {
		contract.Fields[idx].Format = FormatColor
		contract.Fields[idx].Classes = append([]string(nil), picker...)
	}
	contract.Normalize()
	return contract
}
