// Package color holds the 24-bit RGB value type shared by the palette,
// preview and branding packages. Canonical strings are "#rrggbb"; parsing is
// case-insensitive, formatting is always lower-case and zero-padded.
package color
