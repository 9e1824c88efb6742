// Package migrations embeds the goose SQL migrations so that the server,
// the migrate command and integration tests share one source of truth.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
