// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package stego implements least-significant-bit steganography over a flat
// pixel buffer.
//
// It is split in two independent layers:
//
//   - the frame codec ([BuildFrame], [ParseFrame]) turns a payload into a
//     self-describing bit sequence "STEG" ‖ length ‖ payload and finds it
//     again in an arbitrary bit stream;
//   - the pixel bit channel ([Channel.Embed], [Scan]) carries those bits in
//     the lowest bit of each buffer byte, one bit per byte, in ascending
//     index order.
//
// Encryption of the payload is handled elsewhere; this package only moves
// bytes.
package stego
