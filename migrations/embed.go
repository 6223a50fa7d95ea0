package migrations

import "embed"

// Files holds the numbered SQLite schema migrations applied at startup.
//
//go:embed *.sql
var Files embed.FS
