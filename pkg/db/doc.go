// Package db provides database connection utilities for the JobTrackr
// server and CLI.
package db
