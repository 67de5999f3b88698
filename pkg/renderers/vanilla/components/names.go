package components

import "github.com/goliatone/go-palette/pkg/widgets"

// Component names used by the vanilla renderer and default registry. They
// match the widget names resolved by the widget registry.
const (
	NameColorPicker = widgets.WidgetColorPicker
	NameText        = widgets.WidgetText
)

// Config keys understood by the built-in components.
const (
	ConfigAction      = "action"
	ConfigActionLabel = "action_label"
)
