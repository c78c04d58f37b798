// Package migrations holds the goose SQL migrations of the board store.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
