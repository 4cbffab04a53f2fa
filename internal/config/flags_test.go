// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{"empty", NetAddress{}, ""},
		{"localhost", NetAddress{Host: "localhost", Port: 8080}, "localhost:8080"},
		{"ip", NetAddress{Host: "127.0.0.1", Port: 9090}, "127.0.0.1:9090"},
		{"any interface", NetAddress{Port: 8080}, ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{
			name:         "valid localhost",
			input:        "localhost:8080",
			expectedAddr: NetAddress{Host: "localhost", Port: 8080},
		},
		{
			name:         "valid IPv4",
			input:        "127.0.0.1:9090",
			expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090},
		},
		{
			name:         "empty host",
			input:        ":8080",
			expectedAddr: NetAddress{Port: 8080},
		},
		{
			name:        "missing colon",
			input:       "localhost8080",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "multiple colons without brackets",
			input:       "host:port:extra",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "non-numeric port",
			input:       "localhost:abc",
			expectError: true,
			errorMsg:    "invalid syntax",
		},
		{
			name:        "zero port",
			input:       "localhost:0",
			expectError: true,
			errorMsg:    "port number must be in range 1-65535",
		},
		{
			name:        "port too large",
			input:       "localhost:70000",
			expectError: true,
			errorMsg:    "port number must be in range 1-65535",
		},
		{
			name:        "invalid IP address",
			input:       "invalid.host:8080",
			expectError: true,
			errorMsg:    "incorrect IP-address provided",
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedAddr.Host, addr.Host)
				assert.Equal(t, tt.expectedAddr.Port, addr.Port)
			}
		})
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *StructuredConfig
	}{
		{
			name:     "no flags",
			args:     nil,
			expected: &StructuredConfig{},
		},
		{
			name: "server flags",
			args: []string{"-a", "localhost:9000", "-request-timeout", "15s", "-max-upload", "2048"},
			expected: &StructuredConfig{
				Server: Server{HTTPAddress: "localhost:9000", RequestTimeout: 15 * time.Second, MaxUploadBytes: 2048},
			},
		},
		{
			name: "stego and adapter flags",
			args: []string{"-bytes-per-bit", "1", "-remote", "http://10.0.0.2:8080", "-remote-timeout", "3s"},
			expected: &StructuredConfig{
				Stego:   Stego{BytesPerBit: 1},
				Adapter: Adapter{HTTPAddress: "http://10.0.0.2:8080", RequestTimeout: 3 * time.Second},
			},
		},
		{
			name:     "config alias",
			args:     []string{"-config", "/etc/stego.json"},
			expected: &StructuredConfig{JSONFilePath: "/etc/stego.json"},
		},
		{
			name:     "short config flag",
			args:     []string{"-c", "stego.json"},
			expected: &StructuredConfig{JSONFilePath: "stego.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(newTestFlagSet(), tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestParseFlags_KeepsPositionalArgs(t *testing.T) {
	fs := newTestFlagSet()

	_, err := parseFlags(fs, []string{"-bytes-per-bit", "2", "in.png", "out.png"})
	require.NoError(t, err)
	assert.Equal(t, []string{"in.png", "out.png"}, fs.Args())
}

func TestParseFlags_CallerFlags(t *testing.T) {
	fs := newTestFlagSet()
	copyOut := fs.Bool("copy", false, "copy result")

	cfg, err := parseFlags(fs, []string{"-copy", "-bytes-per-bit", "3"})
	require.NoError(t, err)
	assert.True(t, *copyOut)
	assert.Equal(t, 3, cfg.Stego.BytesPerBit)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad address", []string{"-a", "nohostport"}},
		{"bad ip", []string{"-a", "999.1.1.1:8080"}},
		{"bad duration", []string{"-request-timeout", "soon"}},
		{"unknown flag", []string{"-token-sign-key", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(newTestFlagSet(), tt.args)
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestNetAddress_SetAndString(t *testing.T) {
	addr := &NetAddress{}
	require.NoError(t, addr.Set("127.0.0.1:8080"))
	assert.Equal(t, "127.0.0.1:8080", addr.String())
}
