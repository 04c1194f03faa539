//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock
package service

import (
	"context"

	"github.com/MKhiriev/connectly-config/internal/config"
	"github.com/MKhiriev/connectly-config/models"
)

// ConfigService gives read access to the resolved branding and UI
// configuration of the running process.
type ConfigService interface {
	// Config returns the whole resolved configuration.
	Config(ctx context.Context) (config.AppConfig, error)
	// Brand returns the brand section.
	Brand(ctx context.Context) (config.BrandConfig, error)
	// Buttons returns the button visibility section.
	Buttons(ctx context.Context) (config.ButtonsConfig, error)
	// View returns the flags of one button view keyed by button identifier.
	// An unknown view yields ErrUnknownView.
	View(ctx context.Context, name string) (map[string]bool, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// ConfigServiceWrapper defines middleware composition for ConfigService.
// Implementations wrap an existing ConfigService to add behavior such as
// logging.
type ConfigServiceWrapper interface {
	Wrap(ConfigService) ConfigService
}
