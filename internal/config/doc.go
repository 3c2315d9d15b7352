// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON config file
//  2. Environment variables
//  3. Command-line flags
//
// Fields left empty by every source receive defaults (for example a 7 day
// token lifetime). The main entry points are [GetStructuredConfig] for the
// server and [GetClientConfig] for the command-line client.
package config
