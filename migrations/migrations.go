// Package migrations embeds the SQL schema migrations applied by
// golang-migrate at start-up.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
