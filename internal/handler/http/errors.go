// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned while reading a multipart upload. Callers can
// match against them with [errors.Is].
var (
	// ErrInvalidMultipartForm is returned when the request body is not a
	// readable multipart form.
	ErrInvalidMultipartForm = errors.New("invalid multipart form")

	// ErrMissingImage is returned when the form has no "image" file part.
	ErrMissingImage = errors.New("missing `image` file in form")

	// ErrUploadTooLarge is returned when the body exceeds the configured
	// upload limit.
	ErrUploadTooLarge = errors.New("uploaded image is too large")
)
