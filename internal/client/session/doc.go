// Package session keeps the operator's login for the renewadmin CLI.
//
// A Session is the bearer token issued by the backend plus the Identity
// decoded from its JWT payload. The decode skips signature verification:
// the identity is a display hint and an expiry estimate, never an
// authorization decision. The backend re-validates every request.
//
// Guard is the single gate every protected screen passes through. It reads
// the token from a Store, refuses missing, malformed or expired tokens
// (clearing them and sending the user to sign-in), and arms one expiry timer
// per screen that can be cancelled when the screen goes away.
package session
