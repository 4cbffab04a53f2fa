// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-stego/internal/crypto"
	"github.com/MKhiriev/go-stego/internal/imaging"
	"github.com/MKhiriev/go-stego/internal/stego"
	"github.com/MKhiriev/go-stego/internal/validators"
)

var errorStatusMap = map[error]int{
	stego.ErrPayloadTooLarge:    http.StatusRequestEntityTooLarge,
	stego.ErrCapacityExceeded:   http.StatusRequestEntityTooLarge,
	stego.ErrNoHeaderFound:      http.StatusNotFound,
	stego.ErrTruncatedPayload:   http.StatusUnprocessableEntity,
	stego.ErrUnencodableMessage: http.StatusBadRequest,

	crypto.ErrAuthenticationFailed: http.StatusUnauthorized,

	validators.ErrEmptyMessage:       http.StatusBadRequest,
	validators.ErrEmptyImage:         http.StatusBadRequest,
	validators.ErrInvalidPixelBuffer: http.StatusBadRequest,

	imaging.ErrUnsupportedFormat: http.StatusUnsupportedMediaType,
	imaging.ErrLossyFormat:       http.StatusUnsupportedMediaType,

	ErrInvalidMultipartForm: http.StatusBadRequest,
	ErrMissingImage:         http.StatusBadRequest,
	ErrUploadTooLarge:       http.StatusRequestEntityTooLarge,
}

func statusFromError(err error) int {
	status, _ := lookupError(err)
	return status
}

func lookupError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError responds with the mapped status. Known errors carry their
// sentinel text; anything unmapped is reported as a bare 500.
func writeError(w http.ResponseWriter, err error) {
	status, target := lookupError(err)
	if target == nil {
		http.Error(w, http.StatusText(status), status)
		return
	}

	http.Error(w, target.Error(), status)
}
