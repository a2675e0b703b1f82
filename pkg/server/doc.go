// Package server assembles the JobTrackr HTTP API: the gorilla/mux router,
// the GORM-backed stores, the token issuer, and the bearer-token middleware.
package server
