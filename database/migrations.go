package database

import "embed"

const MigrationsDir = "migration"

//go:embed migration/*.sql
var Migrations embed.FS
