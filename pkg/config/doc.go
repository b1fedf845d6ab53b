// Package config provides configuration management for the mock server.
//
// Configuration is resolved once at startup from command-line flags and
// NZBMOCK_* environment variables, with flags taking precedence. The
// package covers:
//   - HTTP listen host and port
//   - The external base URL used when building download links
//   - The shared API key
//   - Paths to the NZB directory and the catalog JSON file
//
// Host, port, external URL and API key have documented defaults; the two
// paths are required and validated before the server starts listening.
package config
