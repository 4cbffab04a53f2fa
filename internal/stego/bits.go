// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stego

import "fmt"

// BitSource is an ordered, finite, single-pass sequence of bits.
// NextBit returns ok == false once the sequence is exhausted.
type BitSource interface {
	NextBit() (bit uint8, ok bool)
}

// sliceSource serves bits from an in-memory slice.
type sliceSource struct {
	bits []uint8
	pos  int
}

// SliceSource returns a [BitSource] over bits. Only the lowest bit of every
// element is used.
func SliceSource(bits []uint8) BitSource {
	return &sliceSource{bits: bits}
}

func (s *sliceSource) NextBit() (uint8, bool) {
	if s.pos >= len(s.bits) {
		return 0, false
	}
	bit := s.bits[s.pos] & 1
	s.pos++
	return bit, true
}

// countingSource records how many bits were pulled through it.
type countingSource struct {
	src BitSource
	n   int
}

func (c *countingSource) NextBit() (uint8, bool) {
	bit, ok := c.src.NextBit()
	if ok {
		c.n++
	}
	return bit, ok
}

// appendBits expands every byte of data into 8 bits, most significant first,
// and appends them to dst.
func appendBits(dst []uint8, data ...byte) []uint8 {
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			dst = append(dst, (b>>i)&1)
		}
	}
	return dst
}

// BytesToBits expands data into bits, most significant bit of each byte first.
func BytesToBits(data []byte) []uint8 {
	return appendBits(make([]uint8, 0, len(data)*8), data...)
}

// BitsToBytes packs bits back into bytes, most significant bit first. A
// trailing group shorter than 8 bits is padded with zeros.
func BitsToBytes(bits []uint8) []byte {
	out := make([]byte, 0, (len(bits)+7)/8)
	for i := 0; i < len(bits); i += 8 {
		var b byte
		for j := 0; j < 8; j++ {
			if i+j < len(bits) && bits[i+j]&1 == 1 {
				b |= 1 << (7 - j)
			}
		}
		out = append(out, b)
	}
	return out
}

// readByte assembles the next 8 bits of src into a byte.
func readByte(src BitSource) (byte, bool) {
	var b byte
	for range 8 {
		bit, ok := src.NextBit()
		if !ok {
			return 0, false
		}
		b = b<<1 | bit&1
	}
	return b, true
}

// EncodeLatin1 re-expresses every code point of s as a single byte. It fails
// with [ErrUnencodableMessage] for code points above U+00FF.
func EncodeLatin1(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for i, r := range s {
		if r > 0xFF {
			return nil, fmt.Errorf("%w: %q at byte offset %d", ErrUnencodableMessage, r, i)
		}
		out = append(out, byte(r))
	}
	return out, nil
}

// DecodeLatin1 maps every byte of b to the code point with the same value.
func DecodeLatin1(b []byte) string {
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}
	return string(runes)
}
