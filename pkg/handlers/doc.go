// Package handlers provides the HTTP surface of the mock indexer.
//
// The API is a single query-driven endpoint:
//   - GET /api?t=search&q=...&apikey=... — search the catalog
//   - GET /api?t=get&id=...&apikey=...   — download an NZB file
//   - GET /details/{id}                  — single-item metadata feed
//   - GET /health                        — liveness probe
//
// Every API request is gated on the configured key, and every failure is
// answered with a well-formed Newznab XML error document whose HTTP
// status reflects the failure class.
package handlers
