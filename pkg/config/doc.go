// Package config manages JobTrackr server configuration.
//
// Settings come from three layers, in increasing precedence: built-in
// defaults, the jobtrackr.yml config file, and JOBTRACKR_* environment
// variables. The source of each value is tracked so "jobtrackrctl config
// show" can report where a setting came from.
package config
