// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Capacity describes how much data a carrier image can hold under the
// configured bytes-per-bit policy.
type Capacity struct {
	// BufferBytes is the number of samples in the carrier.
	BufferBytes int `json:"buffer_bytes"`

	// BytesPerBit is the capacity policy in effect: how many carrier bytes
	// are reserved for every embedded bit.
	BytesPerBit int `json:"bytes_per_bit"`

	// MaxFrameBits is the largest frame (header included) that can be embedded.
	MaxFrameBits int `json:"max_frame_bits"`

	// MaxPayloadBytes is the largest unencrypted message, in bytes, that fits
	// both the carrier and the single-byte length field.
	MaxPayloadBytes int `json:"max_payload_bytes"`

	// MaxSealedMessageBytes is the largest UTF-8 message that still fits once
	// it has been sealed and base64 encoded.
	MaxSealedMessageBytes int `json:"max_sealed_message_bytes"`
}
