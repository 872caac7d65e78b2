// Package common contains shared constants and sentinel errors used across
// renewadmin components.
package common

const (
	// AuthorizationHeaderName carries the bearer token on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// APIKeyHeaderName carries the static API key on every request.
	APIKeyHeaderName = "X-Api-Key"

	// RequestIDHeaderName correlates a request with backend logs.
	RequestIDHeaderName = "X-Request-Id"

	// BearerPrefix precedes the token in the Authorization header.
	BearerPrefix = "Bearer "
)
