// Package flickr fetches the remote photo inventory for an account.
//
// The client pages through flickr.people.getPhotos and returns immutable
// Photo snapshots carrying the fields the audit cares about: ID, title,
// upload timestamp, and a file name synthesized from the title (Flickr does
// not expose original file names through the public API). Requests go
// through an HTTPDoer so tests can substitute an httptest server.
package flickr
