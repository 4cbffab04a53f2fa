// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	// Decoders for formats that may arrive as carriers.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/MKhiriev/go-stego/models"
)

// Format names as reported by [Decode] and accepted by [Encode].
const (
	FormatPNG  = "png"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
)

// lossyFormats are read as carriers but never written. BMP belongs here: its
// decoder forces alpha to 0xFF, which overwrites every fourth embedded bit.
var lossyFormats = map[string]struct{}{
	"jpeg":    {},
	"gif":     {},
	"webp":    {},
	FormatBMP: {},
}

var extensionFormats = map[string]string{
	"":      FormatPNG,
	".png":  FormatPNG,
	".bmp":  FormatBMP,
	".tif":  FormatTIFF,
	".tiff": FormatTIFF,
	".jpg":  "jpeg",
	".jpeg": "jpeg",
	".gif":  "gif",
	".webp": "webp",
}

// Decode reads an image in any registered format and returns its samples as
// a [models.PixelBuffer] together with the format name.
func Decode(r io.Reader) (models.PixelBuffer, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return models.PixelBuffer{}, "", fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
		}
		return models.PixelBuffer{}, "", fmt.Errorf("failed to decode image: %w", err)
	}

	return FromImage(img), format, nil
}

// Load opens path and decodes it with [Decode].
func Load(path string) (models.PixelBuffer, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return models.PixelBuffer{}, "", fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

// FromImage copies img into a new buffer. *image.NRGBA sources are copied
// row by row; anything else is converted through draw.Src.
func FromImage(img image.Image) models.PixelBuffer {
	bounds := img.Bounds()
	buf := models.NewPixelBuffer(bounds.Dx(), bounds.Dy())
	rowLen := buf.Width * models.ChannelsPerPixel

	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < buf.Height; y++ {
			offset := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.Pix[y*rowLen:(y+1)*rowLen], src.Pix[offset:offset+rowLen])
		}
		return buf
	}

	dst := &image.NRGBA{Pix: buf.Pix, Stride: rowLen, Rect: image.Rect(0, 0, buf.Width, buf.Height)}
	draw.Draw(dst, dst.Rect, img, bounds.Min, draw.Src)
	return buf
}

// ToImage wraps buf in an *image.NRGBA sharing its samples.
func ToImage(buf models.PixelBuffer) (*image.NRGBA, error) {
	if buf.Width < 0 || buf.Height < 0 || buf.Width*buf.Height*models.ChannelsPerPixel != buf.Len() {
		return nil, fmt.Errorf("%w: %dx%d with %d samples", ErrInvalidDimensions, buf.Width, buf.Height, buf.Len())
	}

	return &image.NRGBA{
		Pix:    buf.Pix,
		Stride: buf.Width * models.ChannelsPerPixel,
		Rect:   image.Rect(0, 0, buf.Width, buf.Height),
	}, nil
}

// EncodePNG writes buf as a PNG image.
func EncodePNG(w io.Writer, buf models.PixelBuffer) error {
	return Encode(w, buf, FormatPNG)
}

// Encode writes buf in the named lossless format.
func Encode(w io.Writer, buf models.PixelBuffer, format string) error {
	img, err := ToImage(buf)
	if err != nil {
		return err
	}

	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		if _, lossy := lossyFormats[format]; lossy {
			return fmt.Errorf("%w: %s", ErrLossyFormat, format)
		}
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	if err != nil {
		return fmt.Errorf("failed to encode %s image: %w", format, err)
	}
	return nil
}

// FormatFromPath picks the output format from the file extension. A path
// without an extension is written as PNG.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	format, ok := extensionFormats[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if _, lossy := lossyFormats[format]; lossy {
		return "", fmt.Errorf("%w: %s", ErrLossyFormat, format)
	}
	return format, nil
}

// Save writes buf to path in the format implied by its extension. Nothing is
// created when the format is refused.
func Save(path string, buf models.PixelBuffer) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close image file: %w", closeErr)
		}
	}()

	return Encode(file, buf, format)
}
