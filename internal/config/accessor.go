//go:generate mockgen -source=accessor.go -destination=../mock/config_provider_mock.go -package=mock
package config

import (
	"fmt"
	"sync/atomic"
)

// Provider gives read access to a resolved configuration.
type Provider interface {
	// Get returns a copy of the resolved configuration, or
	// [ErrNotInitialized] if none has been stored yet.
	Get() (AppConfig, error)
}

// Holder stores one resolved [AppConfig] for the lifetime of the process.
//
// Init may succeed only once. Get hands out copies, so no caller can change
// the stored value; readers need no locking. The zero Holder is empty and
// ready to use.
type Holder struct {
	value atomic.Pointer[AppConfig]
}

// Init validates cfg and stores it. It fails with [ErrAlreadyInitialized] on
// every call after the first successful one.
func (h *Holder) Init(cfg AppConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("error initializing config: %w", err)
	}

	snapshot := cfg
	if !h.value.CompareAndSwap(nil, &snapshot) {
		return ErrAlreadyInitialized
	}

	return nil
}

// Get returns a copy of the stored configuration.
func (h *Holder) Get() (AppConfig, error) {
	snapshot := h.value.Load()
	if snapshot == nil {
		return AppConfig{}, ErrNotInitialized
	}

	return *snapshot, nil
}

// MustGet is like Get but panics before initialization.
func (h *Holder) MustGet() AppConfig {
	cfg, err := h.Get()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Initialized reports whether Init has succeeded.
func (h *Holder) Initialized() bool {
	return h.value.Load() != nil
}

var process Holder

// Process returns the process-wide holder.
func Process() *Holder { return &process }

// Init stores the process-wide resolved configuration. See [Holder.Init].
func Init(cfg AppConfig) error { return process.Init(cfg) }

// Get returns the process-wide resolved configuration. See [Holder.Get].
func Get() (AppConfig, error) { return process.Get() }

// MustGet returns the process-wide resolved configuration or panics.
func MustGet() AppConfig { return process.MustGet() }
