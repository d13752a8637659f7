// Package xmp parses Lightroom side-car metadata into a generic element
// tree and extracts the embedded document identifier from it.
//
// The tree deliberately carries no XMP schema knowledge: lookups chain
// through optional steps and report absence instead of failing, because a
// malformed or truncated side-car is an expected input, not an error.
package xmp
