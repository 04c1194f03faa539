// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net/url"
	"regexp"
	"strconv"

	"golang.org/x/text/language"
)

var languageCodePattern = regexp.MustCompile(`^[a-z]{2}$`)

// Validate checks the semantic rules that types alone cannot express:
//   - brand.app.language is a known ISO 639-1 two-letter code;
//   - brand.og.image and brand.og.url are absolute http(s) URLs.
//
// Every failing leaf is reported as a [*SchemaViolationError]; failures are
// joined.
func (c AppConfig) Validate() error {
	return errors.Join(
		validateLanguage("brand.app.language", c.Brand.App.Language),
		validateAbsoluteURL("brand.og.image", c.Brand.OG.Image),
		validateAbsoluteURL("brand.og.url", c.Brand.OG.URL),
	)
}

func validateLanguage(path, code string) error {
	if !languageCodePattern.MatchString(code) {
		return &SchemaViolationError{Path: path, Reason: "not a two-letter lowercase ISO 639-1 code", Actual: strconv.Quote(code)}
	}
	if _, err := language.ParseBase(code); err != nil {
		return &SchemaViolationError{Path: path, Reason: "unrecognized language code", Actual: strconv.Quote(code)}
	}
	return nil
}

func validateAbsoluteURL(path, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Hostname() == "" {
		return &SchemaViolationError{Path: path, Reason: "not an absolute http(s) URL", Actual: strconv.Quote(raw)}
	}
	return nil
}

// validate checks that the merged [RuntimeConfig] can start a server.
func (cfg *RuntimeConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
