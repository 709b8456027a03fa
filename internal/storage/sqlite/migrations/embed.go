// Package migrations holds the embedded SQLite schema for save games.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
