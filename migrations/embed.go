// Package migrations embeds the SQL schema migrations for each backend.
package migrations

import "embed"

//go:embed sqlite/*.sql
var FS embed.FS
