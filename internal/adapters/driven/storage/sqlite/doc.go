// Package sqlite provides SQLite-based implementations of the driven
// storage ports. All data lives in a single database file with WAL
// journaling, created and migrated on first open.
package sqlite
