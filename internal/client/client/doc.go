// Package client contains the client-side transport for the renewadmin
// backend.
//
// # Overview
//
// The package provides:
//  1. A transport contract (see the Fetcher interface) used by every service:
//     JSON requests, binary report downloads and the anonymous login call.
//  2. A concrete HTTP implementation (see HTTPClient) that attaches the
//     bearer token, the static API key and a request id, unwraps the
//     {code,status,data} envelope and maps HTTP statuses to user-facing
//     messages through one table (see StatusMessage).
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations)
//     wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Non-2xx responses become *APIError, which unwraps to a status sentinel
// (ErrUnauthorized, ErrForbidden, ErrNotFound, ErrInvalidData, ErrServer,
// ErrUnexpectedStatus). Transport failures become *NetworkError, which
// unwraps to ErrUnavailable. UserMessage renders any of them for display.
//
// The client never redirects or clears the session on 401; callers decide.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honour cancellation and deadlines.
package client
