// Package writer fans rendered model output out to one file per model and
// fans the results back in, failing when any single write fails.
package writer
