// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingCommand = errors.New("no command given")
	ErrMissingInput   = errors.New("input image is required (-i)")
)
