package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only host no port",
			addr:     NetAddress{Host: "localhost", Port: 0},
			expected: "localhost:0",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.addr.String()
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
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
			input:        ":3000",
			expectedAddr: NetAddress{Host: "", Port: 3000},
		},
		{
			name:        "missing colon",
			input:       "localhost8080",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "multiple colons",
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

// TestParseFlags tests the ParseFlags function
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *RuntimeConfig)
	}{
		{
			name: "no flags",
			args: nil,
			validate: func(t *testing.T, cfg *RuntimeConfig) {
				assert.Equal(t, "", cfg.Server.HTTPAddress)
				assert.Equal(t, time.Duration(0), cfg.Server.RequestTimeout)
				assert.Empty(t, cfg.Assignments)
				assert.Empty(t, cfg.Dump)
				assert.False(t, cfg.ListKeys)
			},
		},
		{
			name: "address and timeout",
			args: []string{"-a", "127.0.0.1:9000", "--request-timeout", "30s"},
			validate: func(t *testing.T, cfg *RuntimeConfig) {
				assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
				assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
			},
		},
		{
			name: "override source and log level",
			args: []string{"-c", "branding.yaml", "--log-level", "debug"},
			validate: func(t *testing.T, cfg *RuntimeConfig) {
				assert.Equal(t, "branding.yaml", cfg.OverrideSource)
				assert.Equal(t, "debug", cfg.LogLevel)
			},
		},
		{
			name: "repeated set keeps order",
			args: []string{"--set", "brand.app.name=Acme", "--set", "buttons.chat.showMaxBtn=false"},
			validate: func(t *testing.T, cfg *RuntimeConfig) {
				assert.Equal(t, []string{"brand.app.name=Acme", "buttons.chat.showMaxBtn=false"}, cfg.Assignments)
			},
		},
		{
			name: "dump and list keys",
			args: []string{"--dump", "toml", "--list-keys"},
			validate: func(t *testing.T, cfg *RuntimeConfig) {
				assert.Equal(t, "toml", cfg.Dump)
				assert.True(t, cfg.ListKeys)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

// TestParseFlags_Errors verifies that invalid flags are reported instead of
// terminating the process.
func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "bad address", args: []string{"-a", "nowhere"}},
		{name: "bad duration", args: []string{"--request-timeout", "soon"}},
		{name: "unsupported dump format", args: []string{"--dump", "xml"}},
		{name: "unknown flag", args: []string{"--colour"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
