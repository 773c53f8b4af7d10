// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources and merged with
// dario.cat/mergo. A field set by an earlier source is kept; later sources
// only fill fields that are still empty:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the API server and
// [GetClientConfig] for the smoke client.
package config
