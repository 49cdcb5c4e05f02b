// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
