// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the length of the random PBKDF2 salt prefixed to every
	// sealed payload.
	SaltSize = 16
	// NonceSize is the length of the AES-GCM nonce following the salt.
	NonceSize = 12
	// TagSize is the length of the GCM authentication tag appended to the
	// ciphertext.
	TagSize = 16
	// KeySize is the derived key length (AES-256).
	KeySize = 32
	// Iterations is the PBKDF2 iteration count.
	Iterations = 100_000

	sealOverhead = SaltSize + NonceSize + TagSize
)

// payloadCipher is the private implementation of [PayloadCipher].
type payloadCipher struct {
	// rand is the entropy source for salts and nonces.
	rand io.Reader
}

// NewPayloadCipher returns a [PayloadCipher] drawing salts and nonces from
// the OS CSPRNG.
func NewPayloadCipher() PayloadCipher {
	return &payloadCipher{rand: rand.Reader}
}

// DeriveKey derives a 256-bit key from password and salt with PBKDF2-SHA256
// and [Iterations] rounds.
func DeriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, Iterations, KeySize, sha256.New)
}

// SealedLen returns the length of the base64 text produced by sealing a
// message of messageLen UTF-8 bytes.
func SealedLen(messageLen int) int {
	return base64.StdEncoding.EncodedLen(sealOverhead + messageLen)
}

// MaxSealedMessage returns the longest message, in UTF-8 bytes, whose sealed
// form is at most limit bytes long, or zero when even an empty message does
// not fit.
func MaxSealedMessage(limit int) int {
	raw := base64.StdEncoding.DecodedLen(limit - limit%4)
	return max(0, raw-sealOverhead)
}

// Seal implements [PayloadCipher].
func (c *payloadCipher) Seal(message, password string) (string, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(c.rand, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := newGCM(DeriveKey(password, salt))
	if err != nil {
		return "", err
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(c.rand, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// salt ‖ nonce ‖ ciphertext+tag
	blob := make([]byte, 0, sealOverhead+len(message))
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, []byte(message), nil)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [PayloadCipher]. Every failure is reported as
// [ErrAuthenticationFailed] so callers cannot tell a wrong password from a
// damaged payload.
func (c *payloadCipher) Open(sealed, password string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64", ErrAuthenticationFailed)
	}

	if len(blob) < sealOverhead {
		return "", fmt.Errorf("%w: sealed payload too short", ErrAuthenticationFailed)
	}

	salt := blob[:SaltSize]
	nonce := blob[SaltSize : SaltSize+NonceSize]
	ciphertext := blob[SaltSize+NonceSize:]

	gcm, err := newGCM(DeriveKey(password, salt))
	if err != nil {
		return "", err
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrAuthenticationFailed
	}

	return string(plaintext), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
