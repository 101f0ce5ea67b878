//go:build cgo

package database

import (
	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" driver
)
