// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ChannelsPerPixel is the number of interleaved samples stored per pixel in
// [PixelBuffer.Pix] (R, G, B, A).
const ChannelsPerPixel = 4

// PixelBuffer is a decoded raster image held as a flat sequence of 8-bit
// samples in row-major order, four samples per pixel.
//
// The steganographic codec never consults channel semantics: it treats Pix as
// an undifferentiated byte sequence. Width and Height only matter when the
// buffer is turned back into an image.
type PixelBuffer struct {
	// Width is the image width in pixels.
	Width int
	// Height is the image height in pixels.
	Height int
	// Pix holds Width*Height*ChannelsPerPixel samples.
	Pix []byte
}

// NewPixelBuffer allocates a zeroed buffer for a width x height image.
func NewPixelBuffer(width, height int) PixelBuffer {
	return PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*ChannelsPerPixel),
	}
}

// Len returns the number of samples in the buffer.
func (p PixelBuffer) Len() int {
	return len(p.Pix)
}

// Clone returns a deep copy of the buffer. The copy never shares its backing
// array with the receiver.
func (p PixelBuffer) Clone() PixelBuffer {
	pix := make([]byte, len(p.Pix))
	copy(pix, p.Pix)
	return PixelBuffer{Width: p.Width, Height: p.Height, Pix: pix}
}

// WithPix returns a buffer with the receiver's dimensions and the given
// samples.
func (p PixelBuffer) WithPix(pix []byte) PixelBuffer {
	return PixelBuffer{Width: p.Width, Height: p.Height, Pix: pix}
}
