// Package vanilla renders colour forms to plain HTML with a small browser
// runtime that keeps swatches in sync and generates the palette client-side.
// Without JavaScript the generate button posts action=generate so the host
// can run the action server-side.
package vanilla
