package service

import (
	"fmt"

	"github.com/MKhiriev/connectly-config/internal/config"
	"github.com/MKhiriev/connectly-config/internal/logger"
	"github.com/MKhiriev/connectly-config/models"
)

type Services struct {
	ConfigService  ConfigService
	AppInfoService AppInfoService
}

func NewServices(provider config.Provider, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	configService, err := NewConfigService(provider, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating config service: %w", err)
	}

	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		ConfigService:  NewConfigServiceLoggingWrapper().Wrap(configService),
		AppInfoService: appInfoService,
	}, nil
}
