// Package db embeds the SQL migrations so the binary can migrate the
// database without access to the source tree.
package db

import "embed"

//go:embed migrations
var Migrations embed.FS
