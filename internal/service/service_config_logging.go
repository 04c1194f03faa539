package service

import (
	"context"

	"github.com/MKhiriev/connectly-config/internal/config"
	"github.com/MKhiriev/connectly-config/internal/logger"
)

type configServiceLoggingWrapper struct {
	next ConfigService
}

// NewConfigServiceLoggingWrapper returns a [ConfigServiceWrapper] that logs
// failed reads with the request-scoped logger.
func NewConfigServiceLoggingWrapper() ConfigServiceWrapper {
	return &configServiceLoggingWrapper{}
}

func (w *configServiceLoggingWrapper) Wrap(next ConfigService) ConfigService {
	return &configServiceLoggingWrapper{next: next}
}

func (w *configServiceLoggingWrapper) Config(ctx context.Context) (config.AppConfig, error) {
	cfg, err := w.next.Config(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("op", "configService.Config").Msg("error reading config")
	}
	return cfg, err
}

func (w *configServiceLoggingWrapper) Brand(ctx context.Context) (config.BrandConfig, error) {
	brand, err := w.next.Brand(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("op", "configService.Brand").Msg("error reading brand config")
	}
	return brand, err
}

func (w *configServiceLoggingWrapper) Buttons(ctx context.Context) (config.ButtonsConfig, error) {
	buttons, err := w.next.Buttons(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("op", "configService.Buttons").Msg("error reading buttons config")
	}
	return buttons, err
}

func (w *configServiceLoggingWrapper) View(ctx context.Context, name string) (map[string]bool, error) {
	flags, err := w.next.View(ctx, name)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("op", "configService.View").Str("view", name).Msg("error reading button view")
	}
	return flags, err
}
