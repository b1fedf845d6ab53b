// Package models defines the core data structures used throughout the
// mock server.
//
// It includes:
//   - Item: one NZB descriptor from the catalog file
//   - StringList: the scalar-or-list JSON shape used by the categories field
//
// Items carry JSON tags matching the catalog file format and derive their
// request identifier from the filename.
package models
