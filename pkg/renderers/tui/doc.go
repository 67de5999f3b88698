// Package tui prompts for brand colours in a terminal and prints palettes as
// truecolor swatches.
package tui
