// Package branding turns tenant colours into CSS custom properties, a
// stylesheet and go-theme configuration.
package branding
