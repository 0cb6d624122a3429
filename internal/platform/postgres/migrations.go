package postgres

import "embed"

// MigrationsDir is the directory inside Migrations holding the goose files.
const MigrationsDir = "migrations"

// Migrations holds the SQL migrations applied by the server's -migrate flag
// and by the integration test harness.
//
//go:embed migrations/*.sql
var Migrations embed.FS
