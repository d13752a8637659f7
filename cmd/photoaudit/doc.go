// Package main hosts the photoaudit CLI entrypoint and command graph.
//
// The Cobra-based command tree resolves configuration once, opens the
// Lightroom catalog read-only for reporting commands, and takes the catalog
// write lock only when --fix-singles asks for write-back. Matching and
// repoint logic live in internal/audit and internal/catalog; commands here
// handle flags, rendering, and exit codes.
package main
