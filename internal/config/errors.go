// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, a negative timeout or upload limit).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStegoConfigs indicates an unusable capacity policy.
	ErrInvalidStegoConfigs = errors.New("invalid stego configuration")
	// ErrInvalidAdapterConfigs indicates invalid remote adapter settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
