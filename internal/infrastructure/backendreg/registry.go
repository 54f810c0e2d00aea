// Package backendreg holds the registry of print backend factories.
// Providers name a backend by its implementation descriptor; the registry
// maps descriptors to zero-argument factories registered at startup.
package backendreg

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/printhub/backend/internal/domain/printing"
	"go.uber.org/zap"
)

var (
	// ErrMissingImplementation is returned when a provider has no
	// implementation descriptor configured, or only a blank one.
	ErrMissingImplementation = errors.New("provider has no implementation configured")

	// ErrResolutionFailed is returned when the descriptor cannot be turned
	// into a backend: no factory registered under it, or the factory
	// failed to produce one.
	ErrResolutionFailed = errors.New("backend resolution failed")
)

// Factory builds a fresh Backend instance. Factories take no arguments;
// anything the backend needs beyond per-call provider config is bound in
// a closure at registration time.
type Factory func() printing.Backend

// Registry maps implementation descriptors to backend factories.
// Descriptors are matched case-insensitively. Resolution never caches:
// every call builds a fresh instance.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	logger    *zap.Logger
}

// NewRegistry creates an empty backend registry
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		factories: make(map[string]Factory),
		logger:    logger,
	}
}

// Register adds a factory under the given implementation descriptor.
func (r *Registry) Register(implementation string, factory Factory) error {
	key := normalize(implementation)
	if key == "" {
		return fmt.Errorf("%w: cannot register factory", ErrMissingImplementation)
	}
	if factory == nil {
		return fmt.Errorf("nil factory for implementation %q", implementation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[key]; exists {
		return fmt.Errorf("backend %q already registered", key)
	}
	r.factories[key] = factory
	r.logger.Info("registered print backend", zap.String("implementation", key))
	return nil
}

// Resolve builds a fresh backend for the provider's implementation
// descriptor. Every failure is surfaced as a ProviderError so callers
// treat a misconfigured provider like any other provider-side fault; a
// panicking factory is reported as a resolution failure rather than
// crashing the caller.
func (r *Registry) Resolve(provider *printing.Provider) (backend printing.Backend, err error) {
	key := normalize(provider.Implementation)
	if key == "" {
		return nil, printing.WrapProviderError(
			fmt.Sprintf("provider %q", provider.SearchKey), ErrMissingImplementation)
	}

	r.mu.RLock()
	factory, exists := r.factories[key]
	r.mu.RUnlock()
	if !exists {
		return nil, printing.WrapProviderError(
			fmt.Sprintf("no backend registered for implementation %q (provider %q)", key, provider.SearchKey),
			ErrResolutionFailed)
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("backend factory panicked",
				zap.String("implementation", key),
				zap.Any("panic", rec))
			backend = nil
			err = printing.WrapProviderError(
				fmt.Sprintf("backend factory for %q panicked: %v", key, rec), ErrResolutionFailed)
		}
	}()

	backend = factory()
	if backend == nil {
		return nil, printing.WrapProviderError(
			fmt.Sprintf("backend factory for %q returned nil", key), ErrResolutionFailed)
	}
	return backend, nil
}

// List returns all registered implementation descriptors sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalize(implementation string) string {
	return strings.ToLower(strings.TrimSpace(implementation))
}
