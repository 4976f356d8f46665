// Package orchestrator drives a generation run: it merges configuration with
// the defaults, resolves the render function, translates and renders every
// model, and hands the results to the writer when a target is configured.
package orchestrator
