package migrations

import "embed"

// Migrations contains the embedded SQL migration files.
//
//go:embed *.sql
var Migrations embed.FS
