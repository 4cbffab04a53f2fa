// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-stego/internal/config"
	"github.com/MKhiriev/go-stego/internal/imaging"
	"github.com/MKhiriev/go-stego/internal/logger"
	"github.com/MKhiriev/go-stego/models"
	"github.com/go-resty/resty/v2"
)

// Multipart form field names understood by the server.
const (
	formImage    = "image"
	formMessage  = "message"
	formPassword = "password"
)

type httpStegoAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPStegoAdapter constructs an HTTP implementation of [StegoAdapter].
// It normalises and validates the base URL from cfg.HTTPAddress and
// configures the underlying resty client with the resolved base URL and
// request timeout.
//
// Returns an error wrapping [ErrInvalidAddress] if cfg.HTTPAddress is empty
// or cannot be parsed as a valid URL.
func NewHTTPStegoAdapter(cfg config.Adapter, logger *logger.Logger) (StegoAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := resty.New().SetBaseURL(baseURL)
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	return &httpStegoAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Encode implements [StegoAdapter]. It uploads the carrier as PNG to
// POST /api/encode and decodes the PNG returned by the server.
func (h *httpStegoAdapter) Encode(ctx context.Context, request models.EncodeRequest) (models.PixelBuffer, error) {
	req, err := h.imageRequest(ctx, request.Image)
	if err != nil {
		return models.PixelBuffer{}, err
	}

	resp, err := req.
		SetMultipartFormData(map[string]string{
			formMessage:  request.Message,
			formPassword: request.Password,
		}).
		Post("/api/encode")
	if err != nil {
		return models.PixelBuffer{}, fmt.Errorf("encode request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PixelBuffer{}, err
	}

	encoded, _, err := imaging.Decode(bytes.NewReader(resp.Body()))
	if err != nil {
		return models.PixelBuffer{}, fmt.Errorf("%w: decode encoded image: %w", ErrUnexpectedResponse, err)
	}

	h.logger.Debug().
		Int("response_bytes", len(resp.Body())).
		Dur("elapsed", resp.Time()).
		Msg("remote encode finished")

	return encoded, nil
}

// Decode implements [StegoAdapter]. It uploads the image to POST /api/decode
// and returns the message from the JSON response.
func (h *httpStegoAdapter) Decode(ctx context.Context, request models.DecodeRequest) (string, error) {
	req, err := h.imageRequest(ctx, request.Image)
	if err != nil {
		return "", err
	}

	resp, err := req.
		SetMultipartFormData(map[string]string{formPassword: request.Password}).
		Post("/api/decode")
	if err != nil {
		return "", fmt.Errorf("decode request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var decoded models.DecodeResponse
	if err = json.Unmarshal(resp.Body(), &decoded); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", ErrUnexpectedResponse, err)
	}

	return decoded.Message, nil
}

// Capacity implements [StegoAdapter]. It uploads the image to
// POST /api/capacity and returns the decoded report.
func (h *httpStegoAdapter) Capacity(ctx context.Context, image models.PixelBuffer) (models.Capacity, error) {
	req, err := h.imageRequest(ctx, image)
	if err != nil {
		return models.Capacity{}, err
	}

	resp, err := req.Post("/api/capacity")
	if err != nil {
		return models.Capacity{}, fmt.Errorf("capacity request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Capacity{}, err
	}

	var capacity models.Capacity
	if err = json.Unmarshal(resp.Body(), &capacity); err != nil {
		return models.Capacity{}, fmt.Errorf("%w: capacity response: %w", ErrUnexpectedResponse, err)
	}

	return capacity, nil
}

// Version implements [StegoAdapter]. It reads GET /api/version/.
func (h *httpStegoAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// imageRequest prepares a multipart request carrying image as a PNG part.
// PNG is lossless, so the server sees exactly the samples held in image.
func (h *httpStegoAdapter) imageRequest(ctx context.Context, image models.PixelBuffer) (*resty.Request, error) {
	var body bytes.Buffer
	if err := imaging.EncodePNG(&body, image); err != nil {
		return nil, fmt.Errorf("encode upload image: %w", err)
	}

	return h.client.R().
		SetContext(ctx).
		SetMultipartField(formImage, "image.png", "image/png", &body), nil
}
