package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrDefaultLocaleRequired indicates no default locale was configured.
var ErrDefaultLocaleRequired = errors.New("portal config: default locale is required")

// ErrDefaultLocaleNotConfigured indicates the default locale is missing from the locales list.
var ErrDefaultLocaleNotConfigured = errors.New("portal config: default locale must be one of the configured locales")

// ErrLocalesRequired indicates the configured locale set is empty.
var ErrLocalesRequired = errors.New("portal config: at least one locale is required")

// ErrDuplicateLocale indicates the same locale code appears twice.
var ErrDuplicateLocale = errors.New("portal config: duplicate locale code")

var ErrLoggingProviderRequired = errors.New("portal config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("portal config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("portal config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("portal config: logging format is invalid")

// ErrImageGenBaseURLRequired indicates image generation was enabled without an endpoint.
var ErrImageGenBaseURLRequired = errors.New("portal config: image generation base URL is required when the feature is enabled")

// ErrCacheTTLInvalid rejects negative cache TTLs.
var ErrCacheTTLInvalid = errors.New("portal config: cache default TTL must be zero or positive")

// ErrCacheFeatureRequiresEnabledCache keeps the feature flag and the cache
// toggle consistent.
var ErrCacheFeatureRequiresEnabledCache = errors.New("portal config: cache feature requires cache.enabled")

// Config aggregates feature flags and adapter bindings for the portal module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	DefaultLocale string
	I18N          I18NConfig
	Content       ContentConfig
	Storage       StorageConfig
	Cache         CacheConfig
	ImageGen      ImageGenConfig
	Logging       LoggingConfig
	Features      Features
}

// I18NConfig wires the locale resolution engine.
type I18NConfig struct {
	Locales []string
	// StorageKey is the well-known client-storage key holding the persisted
	// language preference.
	StorageKey string
	// BundleDir points at the translation bundle root laid out as
	// <dir>/<locale>/<namespace>.json. Empty means the host supplies a bundle
	// programmatically.
	BundleDir string
}

// ContentConfig captures configuration for the page content module.
type ContentConfig struct {
	// Collection names the document-store table/collection holding page
	// content documents.
	Collection string
}

// StorageConfig lists identifiers for storage-related dependencies.
type StorageConfig struct {
	Provider string
}

// CacheConfig captures cache behaviour toggles.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// ImageGenConfig configures the AI-assisted hero image helper.
type ImageGenConfig struct {
	BaseURL string
	Model   string
	Width   int
	Height  int
	// Timeout bounds a single generation call. Zero means the generator's
	// default.
	Timeout time.Duration
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles optional subsystems.
type Features struct {
	ImageGeneration bool
	Cache           bool
	Logger          bool
}

// DefaultConfig returns the baseline portal configuration: the three portal
// locales with English as the primary, memory storage, and logging disabled.
func DefaultConfig() Config {
	return Config{
		DefaultLocale: "en",
		I18N: I18NConfig{
			Locales:    []string{"en", "si", "ta"},
			StorageKey: "portal-lang",
		},
		Content: ContentConfig{
			Collection: "page_contents",
		},
		Storage: StorageConfig{
			Provider: "memory",
		},
		Cache: CacheConfig{
			Enabled:    false,
			DefaultTTL: 5 * time.Minute,
		},
		ImageGen: ImageGenConfig{
			Width:  1024,
			Height: 576,
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "json",
		},
	}
}

// Validate checks cross-field consistency before the module boots.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.DefaultLocale) == "" {
		return ErrDefaultLocaleRequired
	}
	if len(cfg.I18N.Locales) == 0 {
		return ErrLocalesRequired
	}

	seen := make(map[string]struct{}, len(cfg.I18N.Locales))
	defaultConfigured := false
	for _, code := range cfg.I18N.Locales {
		normalized := strings.ToLower(strings.TrimSpace(code))
		if _, dup := seen[normalized]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateLocale, code)
		}
		seen[normalized] = struct{}{}
		if normalized == strings.ToLower(strings.TrimSpace(cfg.DefaultLocale)) {
			defaultConfigured = true
		}
	}
	if !defaultConfigured {
		return fmt.Errorf("%w: %s", ErrDefaultLocaleNotConfigured, cfg.DefaultLocale)
	}

	if cfg.Cache.DefaultTTL < 0 {
		return ErrCacheTTLInvalid
	}
	if cfg.Features.Cache && !cfg.Cache.Enabled {
		return ErrCacheFeatureRequiresEnabledCache
	}

	if cfg.Features.ImageGeneration && strings.TrimSpace(cfg.ImageGen.BaseURL) == "" {
		return ErrImageGenBaseURLRequired
	}

	if cfg.Features.Logger {
		provider := strings.ToLower(strings.TrimSpace(cfg.Logging.Provider))
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if provider != "gologger" {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		switch strings.ToLower(strings.TrimSpace(cfg.Logging.Level)) {
		case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
		default:
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, cfg.Logging.Level)
		}
		switch strings.ToLower(strings.TrimSpace(cfg.Logging.Format)) {
		case "", "json", "console", "pretty":
		default:
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, cfg.Logging.Format)
		}
	}

	return nil
}

// NormalizedLocales returns the configured locale codes lower-cased and trimmed.
func (cfg Config) NormalizedLocales() []string {
	out := make([]string, 0, len(cfg.I18N.Locales))
	for _, code := range cfg.I18N.Locales {
		if normalized := strings.ToLower(strings.TrimSpace(code)); normalized != "" {
			out = append(out, normalized)
		}
	}
	return out
}
