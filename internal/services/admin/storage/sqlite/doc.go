// Package sqlite provides the SQLite-backed admin user directory.
package sqlite
