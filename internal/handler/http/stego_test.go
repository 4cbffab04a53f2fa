// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-stego/internal/config"
	"github.com/MKhiriev/go-stego/internal/crypto"
	"github.com/MKhiriev/go-stego/internal/imaging"
	"github.com/MKhiriev/go-stego/internal/logger"
	"github.com/MKhiriev/go-stego/internal/mock"
	"github.com/MKhiriev/go-stego/internal/service"
	"github.com/MKhiriev/go-stego/internal/stego"
	"github.com/MKhiriev/go-stego/internal/validators"
	"github.com/MKhiriev/go-stego/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testImage(width, height int) models.PixelBuffer {
	buf := models.NewPixelBuffer(width, height)
	for i := range buf.Pix {
		buf.Pix[i] = byte(i*13 + 5)
	}
	return buf
}

func pngBytes(t *testing.T, buf models.PixelBuffer) []byte {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, imaging.EncodePNG(&out, buf))
	return out.Bytes()
}

func newMultipartRequest(t *testing.T, path string, image []byte, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if image != nil {
		fw, err := mw.CreateFormFile(formImage, "carrier.png")
		require.NoError(t, err)
		_, err = fw.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func newMockedRouter(t *testing.T, maxUpload int64) (http.Handler, *mock.MockStegoService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	stegoService := mock.NewMockStegoService(ctrl)
	h := NewHandler(&service.Services{StegoService: stegoService}, config.Server{MaxUploadBytes: maxUpload}, logger.Nop())
	return h.Init(), stegoService
}

// newLoggedRouter is newMockedRouter with every log line kept as JSON in the
// returned buffer.
func newLoggedRouter(t *testing.T) (http.Handler, *mock.MockStegoService, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	stegoService := mock.NewMockStegoService(ctrl)
	logs := new(bytes.Buffer)
	h := NewHandler(&service.Services{StegoService: stegoService}, config.Server{}, &logger.Logger{Logger: zerolog.New(logs)})
	return h.Init(), stegoService, logs
}

func newRealRouter(t *testing.T) http.Handler {
	t.Helper()
	services, err := service.NewServices(config.StructuredConfig{
		App:   config.App{Version: "test"},
		Stego: config.Stego{BytesPerBit: stego.DefaultBytesPerBit},
	}, logger.Nop())
	require.NoError(t, err)
	return NewHandler(services, config.Server{MaxUploadBytes: 1 << 20}, logger.Nop()).Init()
}

// ─────────────────────────────────────────────
// Encode
// ─────────────────────────────────────────────

func TestEncode_ReturnsPNG(t *testing.T) {
	router, stegoService := newMockedRouter(t, 0)
	carrier := testImage(8, 8)
	encoded := testImage(8, 8)
	encoded.Pix[0] ^= 1

	stegoService.EXPECT().
		Encode(gomock.Any(), models.EncodeRequest{Image: carrier, Message: "HELLO", Password: "pw"}).
		Return(encoded, nil)

	req := newMultipartRequest(t, "/api/encode", pngBytes(t, carrier), map[string]string{
		formMessage:  "HELLO",
		formPassword: "pw",
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	got, format, err := imaging.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, imaging.FormatPNG, format)
	assert.Equal(t, encoded, got)
}

func TestEncode_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"capacity exceeded", stego.ErrCapacityExceeded, http.StatusRequestEntityTooLarge, "message is too long for this image"},
		{"payload too large", stego.ErrPayloadTooLarge, http.StatusRequestEntityTooLarge, stego.ErrPayloadTooLarge.Error()},
		{"empty message", validators.ErrEmptyMessage, http.StatusBadRequest, validators.ErrEmptyMessage.Error()},
		{"unencodable", stego.ErrUnencodableMessage, http.StatusBadRequest, stego.ErrUnencodableMessage.Error()},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, stegoService := newMockedRouter(t, 0)
			stegoService.EXPECT().Encode(gomock.Any(), gomock.Any()).
				Return(models.PixelBuffer{}, errors.Join(errors.New("error embedding frame"), tt.err))

			req := newMultipartRequest(t, "/api/encode", pngBytes(t, testImage(4, 4)), map[string]string{formMessage: "x"})
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

// ─────────────────────────────────────────────
// Decode
// ─────────────────────────────────────────────

func TestDecode_ReturnsJSON(t *testing.T) {
	router, stegoService := newMockedRouter(t, 0)
	carrier := testImage(4, 4)

	stegoService.EXPECT().
		Decode(gomock.Any(), models.DecodeRequest{Image: carrier}).
		Return("HELLO", nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newMultipartRequest(t, "/api/decode", pngBytes(t, carrier), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp models.DecodeResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "HELLO", resp.Message)
}

func TestDecode_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"no header", stego.ErrNoHeaderFound, http.StatusNotFound},
		{"truncated", stego.ErrTruncatedPayload, http.StatusUnprocessableEntity},
		{"wrong password", crypto.ErrAuthenticationFailed, http.StatusUnauthorized},
		{"invalid buffer", validators.ErrInvalidPixelBuffer, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, stegoService := newMockedRouter(t, 0)
			stegoService.EXPECT().Decode(gomock.Any(), gomock.Any()).Return("", tt.err)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, newMultipartRequest(t, "/api/decode", pngBytes(t, testImage(4, 4)), nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.err.Error())
		})
	}
}

// ─────────────────────────────────────────────
// Capacity
// ─────────────────────────────────────────────

func TestCapacity_ReturnsJSON(t *testing.T) {
	router, stegoService := newMockedRouter(t, 0)
	want := models.Capacity{BufferBytes: 64, BytesPerBit: 4, MaxFrameBits: 16}

	stegoService.EXPECT().Capacity(gomock.Any(), testImage(4, 4)).Return(want, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newMultipartRequest(t, "/api/capacity", pngBytes(t, testImage(4, 4)), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Capacity
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, want, got)
}

// ─────────────────────────────────────────────
// Upload handling
// ─────────────────────────────────────────────

func TestUpload_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		maxUpload  int64
		request    func(t *testing.T) *http.Request
		wantStatus int
	}{
		{
			name: "missing image part",
			request: func(t *testing.T) *http.Request {
				return newMultipartRequest(t, "/api/decode", nil, map[string]string{formPassword: "pw"})
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "not a multipart body",
			request: func(t *testing.T) *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/api/decode", bytes.NewReader([]byte(`{"image":"x"}`)))
				req.Header.Set("Content-Type", "application/json")
				return req
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown image format",
			request: func(t *testing.T) *http.Request {
				return newMultipartRequest(t, "/api/decode", []byte("definitely not an image"), nil)
			},
			wantStatus: http.StatusUnsupportedMediaType,
		},
		{
			name:      "upload over the limit",
			maxUpload: 64,
			request: func(t *testing.T) *http.Request {
				return newMultipartRequest(t, "/api/decode", pngBytes(t, testImage(32, 32)), nil)
			},
			wantStatus: http.StatusRequestEntityTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The service mock has no expectations: any call fails the test.
			router, _ := newMockedRouter(t, tt.maxUpload)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, tt.request(t))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

// ─────────────────────────────────────────────
// Response write failures
// ─────────────────────────────────────────────

func TestHandlers_LogFailedResponseWrite(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		expect      func(s *mock.MockStegoService)
		wantMessage string
	}{
		{
			name: "encoded image",
			path: "/api/encode",
			expect: func(s *mock.MockStegoService) {
				s.EXPECT().Encode(gomock.Any(), gomock.Any()).Return(testImage(8, 8), nil)
			},
			wantMessage: "error sending encoded image",
		},
		{
			name: "decoded message",
			path: "/api/decode",
			expect: func(s *mock.MockStegoService) {
				s.EXPECT().Decode(gomock.Any(), gomock.Any()).Return("HELLO", nil)
			},
			wantMessage: "error sending JSON response",
		},
		{
			name: "capacity",
			path: "/api/capacity",
			expect: func(s *mock.MockStegoService) {
				s.EXPECT().Capacity(gomock.Any(), gomock.Any()).Return(models.Capacity{BufferBytes: 256}, nil)
			},
			wantMessage: "error sending JSON response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, stegoService, logs := newLoggedRouter(t)
			tt.expect(stegoService)

			req := newMultipartRequest(t, tt.path, pngBytes(t, testImage(8, 8)), map[string]string{formMessage: "HELLO"})
			req.Header.Set(traceIDHeader, "gone-away")
			w := newBrokenPipeWriter()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.status)

			entry := findLogEntry(t, logs, tt.wantMessage)
			assert.Equal(t, "error", entry["level"])
			assert.Equal(t, errBrokenPipe.Error(), entry[zerolog.ErrorFieldName])
			assert.Equal(t, "gone-away", entry["trace_id"])
		})
	}
}

// ─────────────────────────────────────────────
// Full pipeline
// ─────────────────────────────────────────────

func TestRoundTrip_ThroughRouter(t *testing.T) {
	router := newRealRouter(t)

	tests := []struct {
		name     string
		message  string
		password string
		side     int
	}{
		{name: "plain", message: "HELLO", side: 16},
		{name: "sealed", message: "top secret", password: "hunter2", side: 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			image := pngBytes(t, testImage(tt.side, tt.side))

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, newMultipartRequest(t, "/api/encode", image, map[string]string{
				formMessage:  tt.message,
				formPassword: tt.password,
			}))
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			encoded := rec.Body.Bytes()

			rec = httptest.NewRecorder()
			router.ServeHTTP(rec, newMultipartRequest(t, "/api/decode", encoded, map[string]string{
				formPassword: tt.password,
			}))
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var resp models.DecodeResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.message, resp.Message)
		})
	}
}

func TestRoundTrip_WrongPasswordIsUnauthorized(t *testing.T) {
	router := newRealRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newMultipartRequest(t, "/api/encode", pngBytes(t, testImage(32, 32)), map[string]string{
		formMessage:  "classified",
		formPassword: "right",
	}))
	require.Equal(t, http.StatusOK, rec.Code)

	req := newMultipartRequest(t, "/api/decode", rec.Body.Bytes(), map[string]string{formPassword: "wrong"})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "incorrect password or corrupted message")
}

func TestRoundTrip_EmptyMessageIsBadRequest(t *testing.T) {
	router := newRealRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newMultipartRequest(t, "/api/encode", pngBytes(t, testImage(8, 8)), nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), validators.ErrEmptyMessage.Error())
}
