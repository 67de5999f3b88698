package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoPickers is returned when a form has no colour field to adjust.
	ErrNoPickers = errors.New("tui: form has no color fields")
)
