// Package config provides configuration loading, merging, defaulting and
// validation for the media server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Defaults are applied after merging; validation runs last.
// The main entry point is [GetStructuredConfig].
package config
