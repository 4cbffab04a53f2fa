// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-stego/internal/crypto"
	"github.com/MKhiriev/go-stego/internal/imaging"
	"github.com/MKhiriev/go-stego/internal/stego"
	"github.com/MKhiriev/go-stego/internal/validators"
	"github.com/go-resty/resty/v2"
)

// knownErrors are the sentinels the server reports verbatim in error bodies.
var knownErrors = []error{
	stego.ErrPayloadTooLarge,
	stego.ErrCapacityExceeded,
	stego.ErrNoHeaderFound,
	stego.ErrTruncatedPayload,
	stego.ErrUnencodableMessage,
	crypto.ErrAuthenticationFailed,
	validators.ErrEmptyMessage,
	validators.ErrEmptyImage,
	validators.ErrInvalidPixelBuffer,
	imaging.ErrUnsupportedFormat,
	imaging.ErrLossyFormat,
}

// statusErrors is the fallback when the body does not name a sentinel.
var statusErrors = map[int]error{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusUnauthorized:          crypto.ErrAuthenticationFailed,
	http.StatusNotFound:              stego.ErrNoHeaderFound,
	http.StatusRequestEntityTooLarge: stego.ErrCapacityExceeded,
	http.StatusUnsupportedMediaType:  imaging.ErrUnsupportedFormat,
	http.StatusUnprocessableEntity:   stego.ErrTruncatedPayload,
	http.StatusInternalServerError:   ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	for _, known := range knownErrors {
		if body == known.Error() {
			return known
		}
	}

	if target, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", target, body)
	}

	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
