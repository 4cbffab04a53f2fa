// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-stego/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// StegoService hides text messages in pixel buffers and recovers them.
type StegoService interface {
	// Encode returns a copy of the request image carrying the framed message.
	// The request image is never modified.
	Encode(ctx context.Context, request models.EncodeRequest) (models.PixelBuffer, error)

	// Decode recovers the message hidden in the request image.
	Decode(ctx context.Context, request models.DecodeRequest) (string, error)

	// Capacity reports how large a message the image can carry.
	Capacity(ctx context.Context, image models.PixelBuffer) (models.Capacity, error)
}

// AppInfoService exposes build and runtime information about the application.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// StegoServiceWrapper defines middleware composition for StegoService.
// Implementations wrap an existing StegoService to add behavior such as
// logging or validating.
type StegoServiceWrapper interface {
	Wrap(StegoService) StegoService // returns a decorated StegoService applying additional behavior
}
