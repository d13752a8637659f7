// Package preflight provides readiness checks for the catalog file and the
// Flickr API.
//
// The checks run in two contexts:
//   - The audit command runs RunAll before fetching anything, so a missing
//     catalog or a dead API key fails fast instead of mid-run.
//   - The CLI "photoaudit doctor" command renders each Result so users can
//     see at a glance which part of the setup is broken.
package preflight
