package llmprovider

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"freezer-inventory/config"
	"freezer-inventory/pkg/gemini"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers filtered out.
// Providers that fail to initialize are skipped; their errors are returned alongside
// the working ones so the caller can log them.
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, []error, error) {
	if cfg == nil {
		return nil, nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	var initErrs []error
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			initErrs = append(initErrs, fmt.Errorf("provider %s (priority %d): %w", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		msgs := make([]string, len(initErrs))
		for i, err := range initErrs {
			msgs[i] = err.Error()
		}
		return nil, initErrs, fmt.Errorf("no providers successfully initialized: %s", strings.Join(msgs, "; "))
	}

	return providers, initErrs, nil
}

func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	var timeout time.Duration
	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", cfg.Timeout, err)
		}
		timeout = d
	}

	switch cfg.Name {
	case providerGemini:
		client, err := gemini.New(gemini.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			APIURL:  cfg.BaseURL,
			Timeout: timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
