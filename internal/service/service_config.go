package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/connectly-config/internal/config"
	"github.com/MKhiriev/connectly-config/internal/logger"
)

type configService struct {
	provider config.Provider

	logger *logger.Logger
}

func NewConfigService(provider config.Provider, logger *logger.Logger) (ConfigService, error) {
	if provider == nil {
		return nil, ErrNoConfigProvider
	}

	return &configService{
		provider: provider,
		logger:   logger,
	}, nil
}

func (s *configService) Config(ctx context.Context) (config.AppConfig, error) {
	return s.provider.Get()
}

func (s *configService) Brand(ctx context.Context) (config.BrandConfig, error) {
	cfg, err := s.provider.Get()
	if err != nil {
		return config.BrandConfig{}, err
	}

	return cfg.Brand, nil
}

func (s *configService) Buttons(ctx context.Context) (config.ButtonsConfig, error) {
	cfg, err := s.provider.Get()
	if err != nil {
		return config.ButtonsConfig{}, err
	}

	return cfg.Buttons, nil
}

func (s *configService) View(ctx context.Context, name string) (map[string]bool, error) {
	cfg, err := s.provider.Get()
	if err != nil {
		return nil, err
	}

	flags, ok := cfg.Buttons.View(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownView, name)
	}

	return flags, nil
}
