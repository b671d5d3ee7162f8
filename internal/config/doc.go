// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig]. Validation is deliberately
// strict about secrets: the merged configuration is rejected when the
// file-encryption master secret, token signing key, password hash key, or
// seed administrator password is missing.
package config
