// Package config provides configuration loading, merging, and validation
// facilities for the syncano client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (SYNCANO_ prefix)
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetStructuredConfig] for the raw merged view and
// [GetClientConfig] for the typed, defaulted and validated client view.
package config
