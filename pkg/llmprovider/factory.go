package llmprovider

import (
	"fmt"
	"sort"
	"strings"

	"voice-task-tracker/config"
	"voice-task-tracker/pkg/deepseek"
	"voice-task-tracker/pkg/groq"
)

// Supported provider names
const (
	ProviderGroq     = "groq"
	ProviderDeepSeek = "deepseek"
)

// placeholderAPIKeys are values shipped in sample configs that must never reach a provider.
var placeholderAPIKeys = map[string]bool{
	"YOUR_API_KEY_HERE": true,
	"your_api_key_here": true,
	"changeme":          true,
}

// IsUsableAPIKey reports whether key looks like a real credential: non-empty,
// not a sample placeholder and not an unexpanded ${VAR} reference.
func IsUsableAPIKey(key string) bool {
	key = strings.TrimSpace(key)
	if key == "" || placeholderAPIKeys[key] {
		return false
	}
	if strings.HasPrefix(key, "${") && strings.HasSuffix(key, "}") {
		return false
	}
	return true
}

// NewProvider builds the single provider the service talks to: the enabled
// provider with the lowest priority number that has a usable credential.
// Returns ErrCredentialMissing when every enabled provider lacks one.
func NewProvider(cfg *config.LLMConfig) (Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var initErrors []string
	missingCredentials := 0

	for _, p := range enabledProviders {
		if !IsUsableAPIKey(p.APIKey) {
			missingCredentials++
			initErrors = append(initErrors, fmt.Sprintf("provider %s: API key is missing or a placeholder", p.Name))
			continue
		}

		provider, err := createProvider(p)
		if err != nil {
			initErrors = append(initErrors, fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		return provider, nil
	}

	if missingCredentials == len(enabledProviders) {
		return nil, fmt.Errorf("%w: %s", ErrCredentialMissing, strings.Join(initErrors, "; "))
	}
	return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	switch strings.ToLower(cfg.Name) {
	case ProviderGroq:
		client, err := groq.New(groq.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create groq client: %w", err)
		}
		return NewGroqAdapter(client), nil

	case ProviderDeepSeek:
		client, err := deepseek.New(deepseek.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create deepseek client: %w", err)
		}
		return NewDeepSeekAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
