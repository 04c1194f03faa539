package config

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolder_GetBeforeInit(t *testing.T) {
	var h Holder

	cfg, err := h.Get()
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.Equal(t, AppConfig{}, cfg)
	assert.False(t, h.Initialized())
	assert.PanicsWithError(t, ErrNotInitialized.Error(), func() { h.MustGet() })
}

func TestHolder_InitThenGet(t *testing.T) {
	var h Holder
	require.NoError(t, h.Init(Defaults()))

	cfg, err := h.Get()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
	assert.True(t, h.Initialized())
	assert.Equal(t, Defaults(), h.MustGet())
}

func TestHolder_InitTwice(t *testing.T) {
	var h Holder
	require.NoError(t, h.Init(Defaults()))

	other := Defaults()
	other.Brand.App.Name = "Second"
	assert.ErrorIs(t, h.Init(other), ErrAlreadyInitialized)

	cfg, err := h.Get()
	require.NoError(t, err)
	assert.Equal(t, "Connectly", cfg.Brand.App.Name)
}

func TestHolder_InitRejectsInvalid(t *testing.T) {
	var h Holder

	invalid := Defaults()
	invalid.Brand.OG.URL = "not-a-url"
	err := h.Init(invalid)
	assert.ErrorIs(t, err, ErrSchemaViolation)
	assert.False(t, h.Initialized())

	// a failed Init leaves the holder usable
	require.NoError(t, h.Init(Defaults()))
}

func TestHolder_GetReturnsCopy(t *testing.T) {
	var h Holder
	require.NoError(t, h.Init(Defaults()))

	first := h.MustGet()
	first.Buttons.Chat.ShowMaxBtn = false
	first.Brand.App.Name = "mutated"

	second := h.MustGet()
	assert.True(t, second.Buttons.Chat.ShowMaxBtn)
	assert.Equal(t, "Connectly", second.Brand.App.Name)
}

func TestHolder_InitCopiesArgument(t *testing.T) {
	var h Holder
	cfg := Defaults()
	require.NoError(t, h.Init(cfg))

	cfg.Brand.App.Name = "after init"
	assert.Equal(t, "Connectly", h.MustGet().Brand.App.Name)
}

func TestHolder_ConcurrentGet(t *testing.T) {
	var h Holder
	require.NoError(t, h.Init(Defaults()))

	const readers = 32
	results := make([]AppConfig, readers)

	var wg sync.WaitGroup
	for i := range readers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cfg, err := h.Get()
			if err == nil {
				results[i] = cfg
			}
		}()
	}
	wg.Wait()

	for _, cfg := range results {
		assert.Equal(t, Defaults(), cfg)
	}
}

func TestHolder_ConcurrentInitSucceedsOnce(t *testing.T) {
	var h Holder

	const writers = 16
	errs := make([]error, writers)

	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = h.Init(Defaults())
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, ErrAlreadyInitialized)
	}
	assert.Equal(t, 1, succeeded)
}

func TestHolder_ImplementsProvider(t *testing.T) {
	var _ Provider = &Holder{}
	assert.Same(t, Process(), Process())
}
