// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-stego/internal/config"
	"github.com/MKhiriev/go-stego/internal/crypto"
	"github.com/MKhiriev/go-stego/internal/logger"
)

type Services struct {
	StegoService   StegoService
	AppInfoService AppInfoService
}

func NewServices(cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	stegoService, err := NewStegoService(cfg.Stego, crypto.NewPayloadCipher(), logger)
	if err != nil {
		return nil, fmt.Errorf("error creating stego service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		StegoService:   NewStegoValidationService().Wrap(stegoService),
		AppInfoService: appInfoService,
	}, nil
}
