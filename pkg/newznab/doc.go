// Package newznab renders the minimal Newznab XML vocabulary served by
// the mock: the RSS search feed with newznab:attr extensions and the
// error document. Element names and nesting follow the wire format that
// Newznab clients parse, so the struct tags here are load-bearing.
package newznab
