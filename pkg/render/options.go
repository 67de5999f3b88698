package render

import theme "github.com/goliatone/go-theme"

// RenderOptions carry per-request data renderers use without touching the
// form itself.
type RenderOptions struct {
	// Theme supplies CSS variables and asset URLs. Nil falls back to the
	// renderer's embedded defaults.
	Theme *theme.RendererConfig
	// Action is the URL the no-JS fallback posts to. Empty posts to the
	// current page.
	Action string
	// Stylesheet is extra CSS emitted after the theme variables, typically the
	// tenant stylesheet.
	Stylesheet string
	// OmitAssets skips the runtime script and stylesheet tags, for hosts that
	// bundle them separately.
	OmitAssets bool
	// HiddenFields are emitted as hidden inputs (CSRF tokens, tenant IDs).
	HiddenFields map[string]string
}
