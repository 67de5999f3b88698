// Package form wires a colour contract to live inputs, preview swatches and
// the generate action.
//
// A Form is built once from a schema.Contract. Attach binds a swatch to each
// colour picker; Generate derives the secondary and accent colours from the
// primary field, writes them back and refreshes every swatch.
package form
