package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/connectly-config/internal/config"
	"github.com/MKhiriev/connectly-config/internal/logger"
	"github.com/MKhiriev/connectly-config/internal/mock"
	"github.com/MKhiriev/connectly-config/internal/service"
	"github.com/MKhiriev/connectly-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testMocks struct {
	config  *mock.MockConfigService
	appInfo *mock.MockAppInfoService
}

func newMockedHandler(t *testing.T) (*Handler, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := testMocks{
		config:  mock.NewMockConfigService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		ConfigService:  mocks.config,
		AppInfoService: mocks.appInfo,
	}, logger.Nop())

	return h, mocks
}

func serve(router http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
}

// ─────────────────────────────────────────────
// Routes
// ─────────────────────────────────────────────

func TestInit_RegistersAllRoutes(t *testing.T) {
	h, mocks := newMockedHandler(t)
	router := h.Init()

	mocks.config.EXPECT().Brand(gomock.Any()).Return(config.Defaults().Brand, nil)
	mocks.config.EXPECT().Config(gomock.Any()).Return(config.Defaults(), nil)
	mocks.config.EXPECT().Buttons(gomock.Any()).Return(config.Defaults().Buttons, nil)
	mocks.config.EXPECT().View(gomock.Any(), "chat").Return(map[string]bool{"showMaxBtn": true}, nil)
	mocks.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("1.0.0", "", ""))

	for _, path := range []string{
		"/brand",
		"/api/config",
		"/api/config/buttons",
		"/api/config/buttons/chat",
		"/api/version",
	} {
		rec := serve(router, http.MethodGet, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"), path)
		assert.NotEmpty(t, rec.Header().Get(traceIDHeader), path)
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	h, _ := newMockedHandler(t)

	rec := serve(h.Init(), http.MethodGet, "/api/nonexistent")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	h, _ := newMockedHandler(t)
	router := h.Init()

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/brand"},
		{http.MethodPut, "/api/config"},
		{http.MethodDelete, "/api/config/buttons/chat"},
		{http.MethodPost, "/api/version"},
	} {
		rec := serve(router, tc.method, tc.path)
		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tc.method, tc.path)
	}
}

// ─────────────────────────────────────────────
// Config endpoints
// ─────────────────────────────────────────────

func TestGetBrand_ReturnsBrandSection(t *testing.T) {
	h, mocks := newMockedHandler(t)

	brand := config.Defaults().Brand
	brand.App.Title = "Acme <b>Calls</b>"
	mocks.config.EXPECT().Brand(gomock.Any()).Return(brand, nil)

	rec := serve(h.Init(), http.MethodGet, "/brand")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, brand, decodeBody[config.BrandConfig](t, rec))
	// inline markup is served unescaped
	assert.Contains(t, rec.Body.String(), "Acme <b>Calls</b>")
}

func TestGetConfig_ReturnsWholeConfig(t *testing.T) {
	h, mocks := newMockedHandler(t)
	mocks.config.EXPECT().Config(gomock.Any()).Return(config.Defaults(), nil)

	rec := serve(h.Init(), http.MethodGet, "/api/config")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, config.Defaults(), decodeBody[config.AppConfig](t, rec))
}

func TestGetButtons_ReturnsEveryView(t *testing.T) {
	h, mocks := newMockedHandler(t)
	mocks.config.EXPECT().Buttons(gomock.Any()).Return(config.Defaults().Buttons, nil)

	rec := serve(h.Init(), http.MethodGet, "/api/config/buttons")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]map[string]bool](t, rec)
	for _, view := range config.Views() {
		assert.Contains(t, body, view)
	}
	assert.False(t, body["whiteboard"]["whiteboardLockBtn"])
}

func TestGetButtonView(t *testing.T) {
	tests := []struct {
		name           string
		flags          map[string]bool
		wantAnyVisible bool
	}{
		{
			name:           "some visible",
			flags:          map[string]bool{"showTogglePinBtn": false, "showMaxBtn": true},
			wantAnyVisible: true,
		},
		{
			name:           "none visible",
			flags:          map[string]bool{"showTogglePinBtn": false, "showMaxBtn": false},
			wantAnyVisible: false,
		},
		{
			name:           "no buttons",
			flags:          map[string]bool{},
			wantAnyVisible: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newMockedHandler(t)
			mocks.config.EXPECT().View(gomock.Any(), "caption").Return(tt.flags, nil)

			rec := serve(h.Init(), http.MethodGet, "/api/config/buttons/caption")

			require.Equal(t, http.StatusOK, rec.Code)
			got := decodeBody[models.ViewResponse](t, rec)
			assert.Equal(t, "caption", got.View)
			assert.Equal(t, tt.flags, got.Buttons)
			assert.Equal(t, tt.wantAnyVisible, got.AnyVisible)
		})
	}
}

func TestGetButtonView_UnknownView(t *testing.T) {
	h, mocks := newMockedHandler(t)
	mocks.config.EXPECT().View(gomock.Any(), "toolbar").Return(nil, service.ErrUnknownView)

	rec := serve(h.Init(), http.MethodGet, "/api/config/buttons/toolbar")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decodeBody[map[string]string](t, rec)["error"], "unknown button view")
}

func TestConfigEndpoints_NotInitialized(t *testing.T) {
	h, mocks := newMockedHandler(t)
	router := h.Init()

	mocks.config.EXPECT().Brand(gomock.Any()).Return(config.BrandConfig{}, config.ErrNotInitialized)
	mocks.config.EXPECT().Config(gomock.Any()).Return(config.AppConfig{}, config.ErrNotInitialized)
	mocks.config.EXPECT().Buttons(gomock.Any()).Return(config.ButtonsConfig{}, config.ErrNotInitialized)
	mocks.config.EXPECT().View(gomock.Any(), "main").Return(nil, config.ErrNotInitialized)

	for _, path := range []string{"/brand", "/api/config", "/api/config/buttons", "/api/config/buttons/main"} {
		rec := serve(router, http.MethodGet, path)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, path)
	}
}

func TestConfigEndpoints_InternalErrorIsNotEchoed(t *testing.T) {
	h, mocks := newMockedHandler(t)
	mocks.config.EXPECT().Config(gomock.Any()).Return(config.AppConfig{}, assert.AnError)

	rec := serve(h.Init(), http.MethodGet, "/api/config")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

// ─────────────────────────────────────────────
// End to end with a real holder
// ─────────────────────────────────────────────

func TestHandler_WithHolder(t *testing.T) {
	var holder config.Holder
	services, err := service.NewServices(&holder, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
	require.NoError(t, err)
	router := NewHandler(services, logger.Nop()).Init()

	rec := serve(router, http.MethodGet, "/api/config/buttons/chat")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	cfg := config.Defaults()
	cfg.Buttons.Chat.ShowMaxBtn = false
	require.NoError(t, holder.Init(cfg))

	rec = serve(router, http.MethodGet, "/api/config/buttons/chat")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[models.ViewResponse](t, rec)
	assert.False(t, got.Buttons["showMaxBtn"])
	assert.True(t, got.Buttons["showChatGPTBtn"])
	assert.True(t, got.AnyVisible)
}
