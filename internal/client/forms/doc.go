// Package forms implements the create/edit screen workflow: a local draft,
// per-field validation driven by struct tags, a submit that is disabled while
// a request is in flight, and a delayed return to the parent list on success.
package forms
