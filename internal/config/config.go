// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-stego server and CLI. It is populated by merging values from
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Server holds network, timeout and upload limits of the HTTP API.
	Server Server `envPrefix:"SERVER_"`

	// Stego holds the embedding policy.
	Stego Stego `envPrefix:"STEGO_"`

	// Adapter holds settings used by the CLI to reach a remote server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound HTTP API.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxUploadBytes caps the size of an uploaded image.
	// Env: SERVER_MAX_UPLOAD_BYTES
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES"`
}

// Stego holds the embedding policy shared by every encoder.
type Stego struct {
	// BytesPerBit is the capacity policy: how many carrier bytes must exist
	// for every embedded bit. Changing it changes the maximum message length
	// for a given image.
	// Env: STEGO_BYTES_PER_BIT
	BytesPerBit int `env:"BYTES_PER_BIT"`
}

// Adapter holds the settings used to reach a remote go-stego server.
type Adapter struct {
	// HTTPAddress is the base address of the remote server, either
	// "host:port" or a full URL. Empty means "work locally".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Default values applied to fields left empty by every source.
const (
	DefaultVersion        = "dev"
	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxUploadBytes = 32 << 20
	DefaultBytesPerBit    = 4
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: DefaultVersion},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			MaxUploadBytes: DefaultMaxUploadBytes,
		},
		Stego:   Stego{BytesPerBit: DefaultBytesPerBit},
		Adapter: Adapter{RequestTimeout: DefaultRequestTimeout},
	}
}

// GetStructuredConfig loads, merges and validates the configuration from all
// available sources. Later sources override earlier ones field by field:
//  1. Environment variables
//  2. Command-line flags registered on fs and parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields still empty afterwards receive their defaults.
func GetStructuredConfig(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(fs, args).
		withJSON().
		build()
}

// GetCLIConfig loads the configuration used by the command-line tool:
// environment variables, then the JSON file named by CONFIG, then defaults.
// Command-line flags are left to the subcommands, which own their flag sets.
func GetCLIConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		build()
}
