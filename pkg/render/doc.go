// Package render defines the renderer contract and a name-keyed registry of
// renderers for colour forms.
package render
