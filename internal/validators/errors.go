// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyMessage       = errors.New("message is required")
	ErrEmptyImage         = errors.New("image is required")
	ErrInvalidPixelBuffer = errors.New("invalid pixel buffer")
)
