// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// ErrAuthenticationFailed is returned by [PayloadCipher.Open] when the
// integrity tag does not verify or the sealed payload cannot be decoded.
var ErrAuthenticationFailed = errors.New("incorrect password or corrupted message")
