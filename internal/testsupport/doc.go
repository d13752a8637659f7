// Package testsupport provides builders shared across package tests: a
// per-test configuration rooted in temp directories and a synthetic
// Lightroom catalog seeded with published photos.
package testsupport
