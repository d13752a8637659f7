// Package catalog reads Lightroom catalogs and applies remote ID repoints.
//
// A Lightroom catalog is a SQLite database. The Store opens it, discovers
// which Flickr sets the catalog publishes to, and materializes read-only
// photo snapshots (optionally with decompressed side-car XMP). The only
// write this package performs is Repoint, which retargets a stored Flickr
// ID inside a single transaction and verifies at least one row changed.
//
// Close Lightroom before running with write-back enabled; the Store takes
// a flock-based lock beside the catalog for the duration of a repoint
// session but cannot protect against Lightroom's own writes.
package catalog
