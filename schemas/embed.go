// Package schemas provides embedded SQL migration files, one directory per
// supported database dialect.
package schemas

import "embed"

// Migrations contains all SQL migration files.
//
//go:embed migrations/mysql/*.sql migrations/sqlite3/*.sql
var Migrations embed.FS
