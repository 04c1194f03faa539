package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/connectly-config/internal/logger"
	"github.com/MKhiriev/connectly-config/internal/utils"
)

const defaultRequestTimeout = 15 * time.Second

// Loader materialises override layers from their sources and resolves them
// over the built-in defaults. Precedence, lowest to highest:
//  1. built-in defaults ([Defaults])
//  2. override document (file path or http(s) URL)
//  3. CONNECTLY_* environment variables
//  4. --set assignments
type Loader struct {
	runtime *RuntimeConfig
	client  *utils.HTTPClient
	environ func() []string

	logger *logger.Logger
}

// NewLoader builds a Loader reading the real process environment.
func NewLoader(runtime *RuntimeConfig, logger *logger.Logger) *Loader {
	timeout := runtime.Server.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &Loader{
		runtime: runtime,
		client:  utils.NewHTTPClient(timeout),
		environ: os.Environ,
		logger:  logger,
	}
}

// Load resolves the configuration once. Every source error is reported;
// SchemaViolation and UnknownKey errors must abort startup.
func (l *Loader) Load(ctx context.Context) (AppConfig, error) {
	override, err := newOverrideBuilder(l.logger).
		withSource(ctx, l.runtime.OverrideSource, l.readSource).
		withEnv(l.environ()).
		withAssignments(l.runtime.Assignments).
		build()
	if err != nil {
		return AppConfig{}, err
	}

	resolved, err := Resolve(Defaults(), override)
	if err != nil {
		return AppConfig{}, err
	}

	l.logger.Debug().Any("config", resolved).Msg("configuration resolved")
	return resolved, nil
}

// Load is a shortcut for NewLoader(runtime, logger).Load(ctx).
func Load(ctx context.Context, runtime *RuntimeConfig, logger *logger.Logger) (AppConfig, error) {
	return NewLoader(runtime, logger).Load(ctx)
}

func (l *Loader) readSource(ctx context.Context, source string) ([]byte, Format, error) {
	if isRemote(source) {
		return l.fetchRemote(ctx, source)
	}

	format, err := FormatFromPath(source)
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, "", fmt.Errorf("error reading override file: %w", err)
	}

	return data, format, nil
}

func (l *Loader) fetchRemote(ctx context.Context, rawURL string) ([]byte, Format, error) {
	resp, err := l.client.R().
		SetContext(ctx).
		Get(rawURL)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrRemoteSource, err)
	}
	if resp.IsError() {
		return nil, "", fmt.Errorf("%w: %s responded %s", ErrRemoteSource, rawURL, resp.Status())
	}

	var path string
	if u, err := url.Parse(rawURL); err == nil {
		path = u.Path
	}

	format, err := FormatFromPath(path)
	if err != nil {
		format, err = FormatFromContentType(resp.Header().Get("Content-Type"))
		if err != nil {
			return nil, "", err
		}
	}

	return resp.Body(), format, nil
}

func isRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

type sourceReader func(ctx context.Context, source string) ([]byte, Format, error)

// overrideBuilder collects override layers in precedence order and joins
// every error it meets, so one startup reports all misconfigurations.
type overrideBuilder struct {
	layers []PartialAppConfig
	err    error

	logger *logger.Logger
}

func newOverrideBuilder(logger *logger.Logger) *overrideBuilder {
	return &overrideBuilder{
		layers: make([]PartialAppConfig, 0, 3),
		logger: logger,
	}
}

func (b *overrideBuilder) build() (PartialAppConfig, error) {
	if b.err != nil {
		return PartialAppConfig{}, fmt.Errorf("error loading config overrides: %w", b.err)
	}

	return MergeOverrides(b.layers...)
}

func (b *overrideBuilder) withSource(ctx context.Context, source string, read sourceReader) *overrideBuilder {
	if source == "" {
		return b
	}

	data, format, err := read(ctx, source)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	layer, err := DecodeOverride(data, format)
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error in %s: %w", source, err))
		return b
	}

	b.logger.Debug().Str("source", source).Str("format", string(format)).Msg("override document applied")
	b.layers = append(b.layers, layer)
	return b
}

func (b *overrideBuilder) withEnv(environ []string) *overrideBuilder {
	layer, err := ParseOverrideEnv(environ)
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error in environment: %w", err))
		return b
	}

	b.logger.Debug().Msg("environment overrides applied")
	b.layers = append(b.layers, layer)
	return b
}

func (b *overrideBuilder) withAssignments(assignments []string) *overrideBuilder {
	if len(assignments) == 0 {
		return b
	}

	layer, err := SetOverride(assignments)
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error in --set flags: %w", err))
		return b
	}

	b.logger.Debug().Int("count", len(assignments)).Msg("--set overrides applied")
	b.layers = append(b.layers, layer)
	return b
}
