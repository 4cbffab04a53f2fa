// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package imaging

import "errors"

var (
	// ErrUnsupportedFormat is returned for files no registered decoder or
	// encoder understands.
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrLossyFormat is returned when asked to write a format that would not
	// preserve the lowest bit of every sample.
	ErrLossyFormat = errors.New("lossy image format cannot carry a hidden message")
	// ErrInvalidDimensions is returned when a buffer's size does not match
	// its width and height.
	ErrInvalidDimensions = errors.New("pixel buffer does not match its dimensions")
)
