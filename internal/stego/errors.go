// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stego

import "errors"

var (
	// ErrPayloadTooLarge is returned by [BuildFrame] when the payload does not
	// fit in the single length byte of the frame header.
	ErrPayloadTooLarge = errors.New("payload too large for frame")

	// ErrCapacityExceeded is returned by [Channel.Embed] when the carrier is
	// too small for the frame under the channel's capacity policy.
	ErrCapacityExceeded = errors.New("message is too long for this image")

	// ErrNoHeaderFound is returned by [ParseFrame] when the whole bit source
	// was consumed without matching the magic marker.
	ErrNoHeaderFound = errors.New("no hidden message found in this image")

	// ErrTruncatedPayload is returned by [ParseFrame] when the header matched
	// but the source ended before the declared payload length.
	ErrTruncatedPayload = errors.New("hidden message is truncated")

	// ErrUnencodableMessage is returned by [EncodeLatin1] for code points that
	// cannot be expressed in a single byte.
	ErrUnencodableMessage = errors.New("message contains characters that need a password to be hidden")

	// ErrInvalidCapacityPolicy is returned by [NewChannel] for a bytes-per-bit
	// value below one.
	ErrInvalidCapacityPolicy = errors.New("invalid capacity policy")
)
