// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncodeRequest carries everything needed to hide a message: the carrier
// image, the message text and an optional password.
type EncodeRequest struct {
	// Image is the carrier. It is never modified by the encoder.
	Image PixelBuffer
	// Message is the text to hide.
	Message string
	// Password enables sealing when non-empty.
	Password string
}

// Sealed reports whether the message should be encrypted before framing.
func (r EncodeRequest) Sealed() bool {
	return r.Password != ""
}

// DecodeRequest carries the image to search and the optional password used to
// open a sealed payload.
type DecodeRequest struct {
	// Image is the image that may contain a hidden message.
	Image PixelBuffer
	// Password must match the one used on encode when the message was sealed.
	Password string
}

// Sealed reports whether the recovered payload should be decrypted.
func (r DecodeRequest) Sealed() bool {
	return r.Password != ""
}

// DecodeResponse is the JSON body returned by the decode endpoint.
type DecodeResponse struct {
	Message string `json:"message"`
}
