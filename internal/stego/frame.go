// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stego

import "fmt"

const (
	// Magic marks the start of a frame.
	Magic = "STEG"

	// MaxPayloadSize is the largest payload the single length byte can describe.
	MaxPayloadSize = 255

	// HeaderSize is the number of bytes preceding the payload: magic plus
	// one length byte.
	HeaderSize = len(Magic) + 1
)

// FrameBits returns how many bits a frame carrying payloadLen bytes occupies.
func FrameBits(payloadLen int) int {
	return (HeaderSize + payloadLen) * 8
}

// BuildFrame serializes payload as Magic ‖ length ‖ payload and expands the
// result into bits, most significant bit of every byte first.
//
// The length byte holds the numeric payload length. Payloads longer than
// [MaxPayloadSize] are rejected with [ErrPayloadTooLarge] instead of being
// wrapped into the length byte.
func BuildFrame(payload []byte) ([]uint8, error) {
	if len(payload) > MaxPayloadSize {
		return nil, fmt.Errorf("%w: %d bytes, limit is %d", ErrPayloadTooLarge, len(payload), MaxPayloadSize)
	}

	bits := make([]uint8, 0, FrameBits(len(payload)))
	bits = appendBits(bits, []byte(Magic)...)
	bits = appendBits(bits, byte(len(payload)))
	bits = appendBits(bits, payload...)

	return bits, nil
}

// ParseFrame searches src for a frame and returns its payload together with
// the number of bits pulled from src.
//
// The search keeps a window of the last len(Magic) bytes read. Whenever the
// window does not hold the marker, its oldest byte is dropped and the next
// byte is shifted in, so every byte-width offset of the stream is tried in
// turn. Once the marker matches, exactly one length byte and then length
// payload bytes are read.
//
// Errors:
//   - [ErrNoHeaderFound] when src is exhausted before the marker matches;
//   - [ErrTruncatedPayload] when src ends before the length byte or the full
//     payload could be read.
func ParseFrame(src BitSource) ([]byte, int, error) {
	cs := &countingSource{src: src}

	var window [len(Magic)]byte
	filled := 0
	for {
		b, ok := readByte(cs)
		if !ok {
			return nil, cs.n, ErrNoHeaderFound
		}

		copy(window[:], window[1:])
		window[len(window)-1] = b
		if filled < len(window) {
			filled++
		}

		if filled == len(window) && string(window[:]) == Magic {
			break
		}
	}

	length, ok := readByte(cs)
	if !ok {
		return nil, cs.n, fmt.Errorf("%w: missing length byte", ErrTruncatedPayload)
	}

	payload := make([]byte, 0, int(length))
	for len(payload) < int(length) {
		b, ok := readByte(cs)
		if !ok {
			return nil, cs.n, fmt.Errorf("%w: got %d of %d bytes", ErrTruncatedPayload, len(payload), length)
		}
		payload = append(payload, b)
	}

	return payload, cs.n, nil
}
