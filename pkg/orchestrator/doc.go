// Package orchestrator wires contract loading, form construction, the
// generate action and rendering into a single call.
package orchestrator
