// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// RuntimeConfig holds settings of the serving process itself, as opposed to
// the branding and UI configuration it serves. It is populated by merging
// built-in defaults, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type RuntimeConfig struct {
	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// LogLevel is a zerolog level name (debug, info, warn, ...).
	// Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// OverrideSource is an optional override document: a file path or an
	// http(s) URL. Its format is taken from the extension, or from the
	// response Content-Type for URLs without one.
	// Env: CONFIG
	OverrideSource string `env:"CONFIG"`

	// Assignments are "path=value" overrides from repeated --set flags.
	// They take precedence over every other source.
	Assignments []string

	// Dump, when set, asks the process to print the resolved configuration
	// in this format and exit instead of serving it.
	Dump string

	// ListKeys asks the process to print every configurable key and exit.
	ListKeys bool
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds both serving a single request and fetching a
	// remote override document (e.g. "15s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

func defaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		LogLevel: "info",
	}
}

// GetRuntimeConfig loads, merges and validates the process settings from the
// following sources (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags (args, without the program name)
func GetRuntimeConfig(args []string) (*RuntimeConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		build()
}
