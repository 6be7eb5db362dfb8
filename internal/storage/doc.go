// Package storage stores uploaded workout videos on disk under
// collision-free names. Files are write-once; the streaming path reads
// them by absolute path and never mutates them.
package storage
