// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/payload_cipher_mock.go -package=mock

// PayloadCipher protects a message with a password before it is framed and
// hidden in an image.
//
// Scheme:
//
//	salt  = 16 random bytes
//	key   = PBKDF2-SHA256(password, salt, 100000 iterations, 32 bytes)
//	nonce = 12 random bytes
//	blob  = salt ‖ nonce ‖ AES-256-GCM(key, nonce, utf8(message))
//	out   = base64(blob)
//
// The base64 form is what gets framed, so its length, not the message length,
// has to fit the frame's single length byte.
type PayloadCipher interface {
	// Seal encrypts message under a key derived from password with a fresh
	// salt and nonce. Two calls with the same input never return the same
	// output.
	Seal(message, password string) (string, error)

	// Open reverses Seal. It returns ErrAuthenticationFailed when the password
	// is wrong or the sealed text is malformed or tampered with, and never
	// returns partial plaintext.
	Open(sealed, password string) (string, error)
}
