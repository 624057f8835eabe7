// Package migrations holds the embedded schema for the relational store
package migrations

import "embed"

// FS contains the embedded SQLite migrations.
//
//go:embed *.sql
var FS embed.FS
