// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the merged [StructuredConfig] is usable at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.RequestTimeout < 0 || cfg.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("%w: timeout %s, max upload %d bytes",
			ErrInvalidServerConfigs, cfg.Server.RequestTimeout, cfg.Server.MaxUploadBytes)
	}

	if cfg.Stego.BytesPerBit < 1 {
		return fmt.Errorf("%w: bytes per bit must be >= 1, got %d", ErrInvalidStegoConfigs, cfg.Stego.BytesPerBit)
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	return nil
}
