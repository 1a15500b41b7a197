// Package db embeds the goose SQL migrations so the binary can create the
// schema without the source tree present.
package db

import "embed"

// MigrationsDir is the directory inside Migrations holding the goose files.
const MigrationsDir = "migrations"

//go:embed migrations/*.sql
var Migrations embed.FS
