// Package migrations embeds the record store's PostgreSQL schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
