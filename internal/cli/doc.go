// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the stego command-line tool.
//
// Subcommands:
//
//	hide      embed a message into a lossless copy of an image
//	reveal    extract a hidden message, optionally copying it to the clipboard
//	capacity  report how much an image can hold
//	version   print build information and, with -remote, the server version
//
// Every subcommand runs locally unless a remote server address is given with
// -remote or ADAPTER_ADDRESS, in which case the work goes through
// [adapter.StegoAdapter].
package cli
