// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields left empty by every source fall back to package defaults. The main
// entry points are [GetStructuredConfig] for the server and [GetCLIConfig]
// for the command-line tool, which leaves flags to its subcommands.
package config
