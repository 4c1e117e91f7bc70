// Package migrations holds the embedded SQL schema files applied by
// cmd/migrate and by database.Migrate.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
