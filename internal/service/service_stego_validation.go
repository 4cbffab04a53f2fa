// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stego/internal/validators"
	"github.com/MKhiriev/go-stego/models"
)

type stegoValidationService struct {
	inner     StegoService
	validator validators.Validator
}

func NewStegoValidationService() StegoServiceWrapper {
	return &stegoValidationService{
		validator: validators.NewStegoRequestValidator(),
	}
}

func (v *stegoValidationService) Encode(ctx context.Context, request models.EncodeRequest) (models.PixelBuffer, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.PixelBuffer{}, fmt.Errorf("error during encode request validation: %w", err)
	}

	return v.inner.Encode(ctx, request)
}

func (v *stegoValidationService) Decode(ctx context.Context, request models.DecodeRequest) (string, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return "", fmt.Errorf("error during decode request validation: %w", err)
	}

	return v.inner.Decode(ctx, request)
}

func (v *stegoValidationService) Capacity(ctx context.Context, image models.PixelBuffer) (models.Capacity, error) {
	if err := v.validator.Validate(ctx, image); err != nil {
		return models.Capacity{}, fmt.Errorf("error during capacity request validation: %w", err)
	}

	return v.inner.Capacity(ctx, image)
}

func (v *stegoValidationService) Wrap(wrapper StegoService) StegoService {
	v.inner = wrapper
	return v
}
