// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the steganography HTTP API.
//
// [StegoAdapter] mirrors the local stego service, so the CLI can hide and
// reveal messages through a remote server without changing its code paths.
// The package ships an HTTP implementation ([NewHTTPStegoAdapter]) built on
// resty.
//
// Non-2xx responses are mapped back to the codec's sentinel errors by
// mapHTTPError, so callers keep using [errors.Is] the same way they would
// against the local service (e.g. [crypto.ErrAuthenticationFailed] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-stego/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/stego_adapter_mock.go -package=mock

// StegoAdapter defines communication with a remote steganography server.
// Implementations are responsible for serialising images and mapping
// transport-level errors to sentinel values.
type StegoAdapter interface {
	// Encode uploads the carrier with the message and optional password and
	// returns the decoded stego image produced by the server.
	Encode(ctx context.Context, request models.EncodeRequest) (models.PixelBuffer, error)

	// Decode uploads an image and returns the hidden message recovered by
	// the server.
	Decode(ctx context.Context, request models.DecodeRequest) (string, error)

	// Capacity reports how much the server can hide in image.
	Capacity(ctx context.Context, image models.PixelBuffer) (models.Capacity, error)

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
