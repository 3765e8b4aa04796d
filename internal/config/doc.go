// Package config provides configuration loading, merging, and validation
// facilities for the authentication server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Defaults are applied to fields that are still zero after merging, and the
// result is validated. A validation failure wraps [ErrConfig] and is fatal at
// startup. The main entry point is [GetStructuredConfig].
package config
