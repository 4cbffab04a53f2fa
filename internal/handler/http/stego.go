// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-stego/internal/imaging"
	"github.com/MKhiriev/go-stego/internal/logger"
	"github.com/MKhiriev/go-stego/models"
)

// Multipart form field names shared by every endpoint.
const (
	formImage    = "image"
	formMessage  = "message"
	formPassword = "password"
)

// multipartMemory is how much of a form is held in memory before parts
// spill to temporary files.
const multipartMemory = 8 << 20

func (h *Handler) encode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	image, err := h.readImageForm(w, r)
	if err != nil {
		log.Err(err).Msg("error reading encode form")
		writeError(w, err)
		return
	}

	request := models.EncodeRequest{
		Image:    image,
		Message:  r.FormValue(formMessage),
		Password: r.FormValue(formPassword),
	}

	encoded, err := h.services.StegoService.Encode(ctx, request)
	if err != nil {
		log.Err(err).Msg("error encoding message")
		writeError(w, err)
		return
	}

	var body bytes.Buffer
	if err = imaging.EncodePNG(&body, encoded); err != nil {
		log.Err(err).Msg("error writing encoded image")
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `attachment; filename="encoded.png"`)
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(body.Bytes()); err != nil {
		log.Err(err).Msg("error sending encoded image")
	}
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	image, err := h.readImageForm(w, r)
	if err != nil {
		log.Err(err).Msg("error reading decode form")
		writeError(w, err)
		return
	}

	message, err := h.services.StegoService.Decode(ctx, models.DecodeRequest{
		Image:    image,
		Password: r.FormValue(formPassword),
	})
	if err != nil {
		log.Err(err).Msg("error decoding message")
		writeError(w, err)
		return
	}

	writeJSON(w, r, models.DecodeResponse{Message: message})
}

func (h *Handler) capacity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	image, err := h.readImageForm(w, r)
	if err != nil {
		log.Err(err).Msg("error reading capacity form")
		writeError(w, err)
		return
	}

	capacity, err := h.services.StegoService.Capacity(ctx, image)
	if err != nil {
		log.Err(err).Msg("error computing capacity")
		writeError(w, err)
		return
	}

	writeJSON(w, r, capacity)
}

// readImageForm parses the multipart body, bounded by the upload limit, and
// decodes its "image" part. The parsed form stays on r for FormValue.
func (h *Handler) readImageForm(w http.ResponseWriter, r *http.Request) (models.PixelBuffer, error) {
	if h.maxUploadBytes > 0 {
		if r.ContentLength > h.maxUploadBytes {
			return models.PixelBuffer{}, fmt.Errorf("%w: limit is %d bytes", ErrUploadTooLarge, h.maxUploadBytes)
		}
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return models.PixelBuffer{}, fmt.Errorf("%w: limit is %d bytes", ErrUploadTooLarge, maxBytesErr.Limit)
		}
		return models.PixelBuffer{}, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err)
	}

	file, _, err := r.FormFile(formImage)
	if err != nil {
		return models.PixelBuffer{}, fmt.Errorf("%w: %w", ErrMissingImage, err)
	}
	defer file.Close()

	image, format, err := imaging.Decode(file)
	if err != nil {
		return models.PixelBuffer{}, err
	}

	logger.FromRequest(r).Debug().
		Str("format", format).
		Int("width", image.Width).
		Int("height", image.Height).
		Msg("carrier image decoded")

	return image, nil
}

// writeJSON sends v with status 200. The header is already out when the
// body fails, so the error can only be logged.
func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromRequest(r).Err(err).Msg("error sending JSON response")
	}
}
