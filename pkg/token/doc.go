// Package token issues and verifies the bearer tokens that authenticate
// JobTrackr requests.
//
// Tokens are HMAC-SHA256 JWTs whose subject is the numeric user id. The
// signing key and token lifetime are injected at construction; nothing in
// this package reads the environment or holds global state.
package token
