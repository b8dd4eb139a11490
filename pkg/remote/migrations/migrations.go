// Package migrations embeds the hosted-variant schema for goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
