// Package models defines the records exchanged with the renewadmin backend.
//
// Records are flat attribute bags mirrored from the API. Foreign keys are
// resolved by the backend and only displayed through the denormalized *_name
// fields. The validate tags drive form validation on the client; the
// backend remains authoritative.
package models
