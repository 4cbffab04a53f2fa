// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-stego/internal/stego"
	"github.com/MKhiriev/go-stego/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func randomBuffer(width, height int, opaque bool) models.PixelBuffer {
	rng := rand.New(rand.NewPCG(uint64(width), uint64(height)))
	buf := models.NewPixelBuffer(width, height)
	for i := range buf.Pix {
		buf.Pix[i] = byte(rng.UintN(256))
		if opaque && i%models.ChannelsPerPixel == 3 {
			buf.Pix[i] = 0xFF
		}
	}
	return buf
}

func TestEncodePNG_RoundTripPreservesEverySample(t *testing.T) {
	tests := []struct {
		name   string
		opaque bool
	}{
		{"translucent", false},
		{"opaque", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := randomBuffer(17, 9, tt.opaque)

			var out bytes.Buffer
			require.NoError(t, EncodePNG(&out, buf))

			got, format, err := Decode(&out)
			require.NoError(t, err)
			assert.Equal(t, FormatPNG, format)
			assert.Equal(t, buf, got)
		})
	}
}

func TestDecode_BMPIsAcceptedAsCarrier(t *testing.T) {
	buf := randomBuffer(13, 7, true)
	img, err := ToImage(buf)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, bmp.Encode(&out, img))

	got, format, err := Decode(&out)
	require.NoError(t, err)
	assert.Equal(t, FormatBMP, format)
	assert.Equal(t, buf, got)
}

func TestEncode_BMPIsRefused(t *testing.T) {
	var out bytes.Buffer
	err := Encode(&out, randomBuffer(4, 4, false), FormatBMP)

	assert.ErrorIs(t, err, ErrLossyFormat)
	assert.Zero(t, out.Len())
}

func TestEncode_HiddenFrameSurvivesWrittenFormats(t *testing.T) {
	payload := []byte("HELLO world")
	bits, err := stego.BuildFrame(payload)
	require.NoError(t, err)

	carriers := []struct {
		name  string
		alpha func(i int) (byte, bool)
	}{
		{"opaque", func(int) (byte, bool) { return 0xFF, true }},
		{"translucent", func(int) (byte, bool) { return 0, false }},
		{"zero alpha", func(int) (byte, bool) { return 0, true }},
	}

	for _, format := range []string{FormatPNG, FormatTIFF} {
		for _, c := range carriers {
			t.Run(format+"/"+c.name, func(t *testing.T) {
				buf := randomBuffer(40, 40, false)
				for i := 3; i < buf.Len(); i += models.ChannelsPerPixel {
					if a, fixed := c.alpha(i); fixed {
						buf.Pix[i] = a
					}
				}

				embedded, err := stego.DefaultChannel().Embed(buf.Pix, bits)
				require.NoError(t, err)
				buf.Pix = embedded

				var out bytes.Buffer
				require.NoError(t, Encode(&out, buf, format))

				got, gotFormat, err := Decode(&out)
				require.NoError(t, err)
				assert.Equal(t, format, gotFormat)

				recovered, _, err := stego.ParseFrame(stego.Scan(got.Pix))
				require.NoError(t, err)
				assert.Equal(t, payload, recovered)
			})
		}
	}
}

func TestEncodeTIFF_RoundTrip(t *testing.T) {
	buf := randomBuffer(8, 8, true)

	var out bytes.Buffer
	require.NoError(t, Encode(&out, buf, FormatTIFF))

	got, format, err := Decode(&out)
	require.NoError(t, err)
	assert.Equal(t, FormatTIFF, format)
	assert.Equal(t, buf, got)
}

func TestEncode_RefusesLossyAndUnknown(t *testing.T) {
	buf := randomBuffer(2, 2, true)

	assert.ErrorIs(t, Encode(&bytes.Buffer{}, buf, "jpeg"), ErrLossyFormat)
	assert.ErrorIs(t, Encode(&bytes.Buffer{}, buf, "gif"), ErrLossyFormat)
	assert.ErrorIs(t, Encode(&bytes.Buffer{}, buf, FormatBMP), ErrLossyFormat)
	assert.ErrorIs(t, Encode(&bytes.Buffer{}, buf, "heic"), ErrUnsupportedFormat)
}

func TestEncode_InvalidDimensions(t *testing.T) {
	buf := models.PixelBuffer{Width: 3, Height: 3, Pix: make([]byte, 12)}

	err := EncodePNG(&bytes.Buffer{}, buf)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestDecode_UnsupportedFormat(t *testing.T) {
	_, _, err := Decode(bytes.NewReader([]byte("definitely not an image")))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDecode_JPEGIsAcceptedAsCarrier(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 0x80
	}
	var out bytes.Buffer
	require.NoError(t, jpeg.Encode(&out, img, nil))

	buf, format, err := Decode(&out)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 4, buf.Width)
	assert.Equal(t, 4, buf.Height)
	assert.Len(t, buf.Pix, 4*4*models.ChannelsPerPixel)
}

func TestFromImage_SubImage(t *testing.T) {
	parent := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			parent.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 7, A: 9})
		}
	}

	sub := parent.SubImage(image.Rect(1, 2, 3, 4))
	buf := FromImage(sub)

	assert.Equal(t, 2, buf.Width)
	assert.Equal(t, 2, buf.Height)
	assert.Equal(t, []byte{
		1, 2, 7, 9, 2, 2, 7, 9,
		1, 3, 7, 9, 2, 3, 7, 9,
	}, buf.Pix)
}

func TestFromImage_Gray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 1))
	img.Pix[0], img.Pix[1] = 10, 201

	buf := FromImage(img)
	assert.Equal(t, []byte{10, 10, 10, 255, 201, 201, 201, 255}, buf.Pix)
}

func TestToImage_SharesSamples(t *testing.T) {
	buf := randomBuffer(3, 2, false)

	img, err := ToImage(buf)
	require.NoError(t, err)

	img.Pix[0] ^= 1
	assert.Equal(t, img.Pix[0], buf.Pix[0])
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr error
	}{
		{"out.png", FormatPNG, nil},
		{"OUT.PNG", FormatPNG, nil},
		{"out", FormatPNG, nil},
		{"dir/out.bmp", "", ErrLossyFormat},
		{"out.tif", FormatTIFF, nil},
		{"out.tiff", FormatTIFF, nil},
		{"out.jpg", "", ErrLossyFormat},
		{"out.jpeg", "", ErrLossyFormat},
		{"out.gif", "", ErrLossyFormat},
		{"out.webp", "", ErrLossyFormat},
		{"out.psd", "", ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	buf := randomBuffer(10, 10, false)
	path := filepath.Join(t.TempDir(), "carrier.png")

	require.NoError(t, Save(path, buf))

	got, format, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, format)
	assert.Equal(t, buf, got)
}

func TestSave_LossyCreatesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carrier.jpg")

	err := Save(path, randomBuffer(2, 2, true))
	assert.ErrorIs(t, err, ErrLossyFormat)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestLoad_MissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open image file")
}
