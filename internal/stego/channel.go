// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stego

import "fmt"

// DefaultBytesPerBit is the reference capacity policy: four carrier bytes are
// reserved for every embedded bit, although embedding writes only one byte
// per bit. Lowering it raises the maximum message length for a given image.
const DefaultBytesPerBit = 4

// Channel embeds bits into the least significant bit of a byte buffer under a
// fixed capacity policy. A Channel holds no mutable state and is safe for
// concurrent use.
type Channel struct {
	bytesPerBit int
}

// NewChannel returns a channel that requires bytesPerBit carrier bytes for
// every embedded bit. bytesPerBit must be at least 1.
func NewChannel(bytesPerBit int) (*Channel, error) {
	if bytesPerBit < 1 {
		return nil, fmt.Errorf("%w: bytes per bit must be >= 1, got %d", ErrInvalidCapacityPolicy, bytesPerBit)
	}
	return &Channel{bytesPerBit: bytesPerBit}, nil
}

// DefaultChannel returns a channel using [DefaultBytesPerBit].
func DefaultChannel() *Channel {
	return &Channel{bytesPerBit: DefaultBytesPerBit}
}

// BytesPerBit returns the capacity policy of the channel.
func (c *Channel) BytesPerBit() int {
	return c.bytesPerBit
}

// MaxFrameBits returns the largest number of bits the policy admits for a
// buffer of bufferLen bytes.
func (c *Channel) MaxFrameBits(bufferLen int) int {
	return bufferLen / c.bytesPerBit
}

// MaxPayload returns the largest payload, in bytes, whose frame fits a buffer
// of bufferLen bytes. The result never exceeds [MaxPayloadSize].
func (c *Channel) MaxPayload(bufferLen int) int {
	n := c.MaxFrameBits(bufferLen)/8 - HeaderSize
	return max(0, min(n, MaxPayloadSize))
}

// Embed returns a copy of buffer whose first len(bits) bytes carry bits in
// their lowest bit: out[i] = buffer[i]&0xFE | bits[i]. Bytes past len(bits)
// are copied unchanged and buffer itself is never modified.
//
// Embed fails with [ErrCapacityExceeded] when len(bits)*BytesPerBit exceeds
// len(buffer).
func (c *Channel) Embed(buffer []byte, bits []uint8) ([]byte, error) {
	need := len(bits) * c.bytesPerBit
	if need > len(buffer) {
		return nil, fmt.Errorf("%w: %d bits need %d bytes, image has %d", ErrCapacityExceeded, len(bits), need, len(buffer))
	}

	out := make([]byte, len(buffer))
	copy(out, buffer)
	for i, bit := range bits {
		out[i] = out[i]&0xFE | bit&1
	}

	return out, nil
}

// bufferScanner yields the lowest bit of each buffer byte in index order.
type bufferScanner struct {
	buf []byte
	pos int
}

// Scan returns a lazy [BitSource] producing buffer[i]&1 for ascending i. The
// buffer is read, never written, and must not be modified while the source
// is in use.
func Scan(buffer []byte) BitSource {
	return &bufferScanner{buf: buffer}
}

func (s *bufferScanner) NextBit() (uint8, bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	bit := s.buf[s.pos] & 1
	s.pos++
	return bit, true
}
