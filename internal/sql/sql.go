// Package sql embeds the registry DDL and queries.
package sql

import "embed"

// Migrations holds the registry migrations, applied in filename order.
//
//go:embed migrations
var Migrations embed.FS
