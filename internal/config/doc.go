// Package config provides configuration loading, merging, and validation
// facilities for the table-ordering server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file and environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields left unset by every source receive the Default* values, and a
// token sign key is generated when none is configured.
//
// The main entry point is [GetStructuredConfig].
package config
