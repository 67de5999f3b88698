// Package preview attaches colour swatches to colour inputs. A Binder is an
// explicit registry from field ID to Swatch: every swatch follows its field's
// input events and forwards clicks to the field's native activation. Fields
// written programmatically do not fire input events, so callers run
// Binder.Refresh after such writes.
package preview
