// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stego/internal/config"
	"github.com/MKhiriev/go-stego/internal/crypto"
	"github.com/MKhiriev/go-stego/internal/logger"
	"github.com/MKhiriev/go-stego/internal/stego"
	"github.com/MKhiriev/go-stego/models"
)

type stegoService struct {
	channel *stego.Channel
	cipher  crypto.PayloadCipher

	logger *logger.Logger
}

// NewStegoService builds the encode/decode pipeline. The capacity policy is
// taken from cfg; a zero policy falls back to [stego.DefaultBytesPerBit].
func NewStegoService(cfg config.Stego, cipher crypto.PayloadCipher, logger *logger.Logger) (StegoService, error) {
	bytesPerBit := cfg.BytesPerBit
	if bytesPerBit == 0 {
		bytesPerBit = stego.DefaultBytesPerBit
	}

	channel, err := stego.NewChannel(bytesPerBit)
	if err != nil {
		return nil, fmt.Errorf("error creating pixel channel: %w", err)
	}

	return &stegoService{
		channel: channel,
		cipher:  cipher,
		logger:  logger,
	}, nil
}

func (s *stegoService) Encode(ctx context.Context, request models.EncodeRequest) (models.PixelBuffer, error) {
	log := s.logger.With().
		Str("op", "encode").
		Int("buffer_bytes", request.Image.Len()).
		Bool("sealed", request.Sealed()).
		Logger()

	payload, err := s.payloadFor(request)
	if err != nil {
		log.Err(err).Msg("error preparing payload")
		return models.PixelBuffer{}, err
	}

	frame, err := stego.BuildFrame(payload)
	if err != nil {
		log.Err(err).Int("payload_bytes", len(payload)).Msg("error building frame")
		return models.PixelBuffer{}, fmt.Errorf("error building frame: %w", err)
	}

	pix, err := s.channel.Embed(request.Image.Pix, frame)
	if err != nil {
		log.Err(err).Int("frame_bits", len(frame)).Msg("error embedding frame")
		return models.PixelBuffer{}, fmt.Errorf("error embedding frame: %w", err)
	}

	log.Debug().Int("payload_bytes", len(payload)).Int("frame_bits", len(frame)).Msg("message embedded")
	return request.Image.WithPix(pix), nil
}

func (s *stegoService) payloadFor(request models.EncodeRequest) ([]byte, error) {
	if request.Sealed() {
		sealed, err := s.cipher.Seal(request.Message, request.Password)
		if err != nil {
			return nil, fmt.Errorf("error sealing message: %w", err)
		}
		return []byte(sealed), nil
	}

	payload, err := stego.EncodeLatin1(request.Message)
	if err != nil {
		return nil, fmt.Errorf("error encoding message: %w", err)
	}
	return payload, nil
}

func (s *stegoService) Decode(ctx context.Context, request models.DecodeRequest) (string, error) {
	log := s.logger.With().
		Str("op", "decode").
		Int("buffer_bytes", request.Image.Len()).
		Bool("sealed", request.Sealed()).
		Logger()

	payload, consumed, err := stego.ParseFrame(stego.Scan(request.Image.Pix))
	if err != nil {
		log.Debug().Err(err).Int("bits_read", consumed).Msg("no frame recovered")
		return "", fmt.Errorf("error parsing frame: %w", err)
	}

	log.Debug().Int("payload_bytes", len(payload)).Int("bits_read", consumed).Msg("frame recovered")

	if !request.Sealed() {
		return stego.DecodeLatin1(payload), nil
	}

	message, err := s.cipher.Open(string(payload), request.Password)
	if err != nil {
		log.Warn().Err(err).Msg("error opening sealed payload")
		return "", fmt.Errorf("error opening sealed payload: %w", err)
	}

	return message, nil
}

func (s *stegoService) Capacity(ctx context.Context, image models.PixelBuffer) (models.Capacity, error) {
	maxPayload := s.channel.MaxPayload(image.Len())

	return models.Capacity{
		BufferBytes:           image.Len(),
		BytesPerBit:           s.channel.BytesPerBit(),
		MaxFrameBits:          s.channel.MaxFrameBits(image.Len()),
		MaxPayloadBytes:       maxPayload,
		MaxSealedMessageBytes: crypto.MaxSealedMessage(maxPayload),
	}, nil
}
