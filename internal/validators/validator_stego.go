// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stego/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldImage targets the carrier pixel buffer of a request.
	FieldImage = "image"

	// FieldMessage targets the text to hide.
	FieldMessage = "message"
)

// StegoRequestValidator checks encode and decode requests before they reach
// the codec.
type StegoRequestValidator struct {
}

func NewStegoRequestValidator() Validator {
	return &StegoRequestValidator{}
}

func (v *StegoRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.EncodeRequest:
		return v.validateEncodeRequest(ctx, value, fields...)
	case *models.EncodeRequest:
		return v.validateEncodeRequest(ctx, *value, fields...)

	case models.DecodeRequest:
		return v.validateDecodeRequest(ctx, value, fields...)
	case *models.DecodeRequest:
		return v.validateDecodeRequest(ctx, *value, fields...)

	case models.PixelBuffer:
		return v.validatePixelBuffer(value)
	case *models.PixelBuffer:
		return v.validatePixelBuffer(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *StegoRequestValidator) validateEncodeRequest(_ context.Context, request models.EncodeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldImage, FieldMessage}
	}

	for _, f := range fields {
		switch f {
		case FieldImage:
			if err := v.validatePixelBuffer(request.Image); err != nil {
				return err
			}
		case FieldMessage:
			if request.Message == "" {
				return ErrEmptyMessage
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *StegoRequestValidator) validateDecodeRequest(_ context.Context, request models.DecodeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldImage}
	}

	for _, f := range fields {
		switch f {
		case FieldImage:
			if err := v.validatePixelBuffer(request.Image); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePixelBuffer accepts a buffer of whole pixels. Dimensions, when set,
// must describe exactly the samples present.
func (v *StegoRequestValidator) validatePixelBuffer(buf models.PixelBuffer) error {
	if buf.Len() == 0 {
		return ErrEmptyImage
	}

	if buf.Len()%models.ChannelsPerPixel != 0 {
		return fmt.Errorf("%w: %d samples is not a whole number of pixels", ErrInvalidPixelBuffer, buf.Len())
	}

	if buf.Width < 0 || buf.Height < 0 {
		return fmt.Errorf("%w: negative dimensions %dx%d", ErrInvalidPixelBuffer, buf.Width, buf.Height)
	}

	if (buf.Width != 0 || buf.Height != 0) && buf.Width*buf.Height*models.ChannelsPerPixel != buf.Len() {
		return fmt.Errorf("%w: %dx%d image needs %d samples, got %d",
			ErrInvalidPixelBuffer, buf.Width, buf.Height, buf.Width*buf.Height*models.ChannelsPerPixel, buf.Len())
	}

	return nil
}
