/*
Package database manages SQLite persistence for analyses and their
feedback items.

The schema has two tables: analyses (one row per uploaded and analyzed
video) and feedback_items (aspect-level observations belonging to one
analysis, removed by cascade when the analysis is deleted). The database
is opened in WAL mode with a busy timeout so overlapping uploads and
stream requests do not trip "database is locked" errors.

All operations take a context and are bounded by a default timeout.
Lookups for a missing analysis return ErrNotFound rather than a bare
sql.ErrNoRows so callers can map it to a 404 without importing
database/sql.
*/
package database
