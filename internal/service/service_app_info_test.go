package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/connectly-config/internal/logger"
	"github.com/MKhiriev/connectly-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	info := models.NewAppBuildInfo("1.0.0", "2026-10-01", "abc123")

	svc, err := NewAppInfoService(info, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	info := models.NewAppBuildInfo("", "2026-10-01", "abc123")

	svc, err := NewAppInfoService(info, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

// ─────────────────────────────────────────────
// GetAppVersion / GetBuildInfo
// ─────────────────────────────────────────────

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(models.NewAppBuildInfo("3.1.4", "", ""), logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_DifferentInstances_IndependentVersions(t *testing.T) {
	svc1, err := NewAppInfoService(models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
	require.NoError(t, err)

	svc2, err := NewAppInfoService(models.NewAppBuildInfo("2.0.0", "", ""), logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", svc1.GetAppVersion(context.Background()))
	assert.Equal(t, "2.0.0", svc2.GetAppVersion(context.Background()))
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}

func TestGetBuildInfo_ReturnsAllFields(t *testing.T) {
	info := models.NewAppBuildInfo("v1.2.3-beta+build.42", "2026-10-17T08:00:00Z", "deadbeef")
	svc, err := NewAppInfoService(info, logger.Nop())
	require.NoError(t, err)

	got := svc.GetBuildInfo(context.Background())

	assert.Equal(t, "v1.2.3-beta+build.42", got.BuildVersion())
	assert.Equal(t, "2026-10-17T08:00:00Z", got.BuildDate())
	assert.Equal(t, "deadbeef", got.BuildCommit())
}
