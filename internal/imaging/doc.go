// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package imaging converts between image files and [models.PixelBuffer].
//
// Every decoded image is normalised to non-premultiplied RGBA so that sample
// values, including their lowest bits, survive a decode/encode round trip
// unchanged. Only PNG and TIFF are written: a JPEG or GIF re-encode would
// rewrite the very bits a hidden message lives in, and BMP loses alpha.
package imaging
