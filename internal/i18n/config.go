package i18n

import "strings"

// Config captures the fixed locale set shared by every portal component. The
// set is decided at build time; both the translator and the hero content
// normalizer read it from here.
type Config struct {
	DefaultLocale string
	Locales       []string
	// StorageKey names the client-storage slot holding the persisted
	// preference.
	StorageKey string
}

// FromModuleConfig adapts the runtime module configuration into the i18n view.
func FromModuleConfig(defaultLocale string, locales []string, storageKey string) Config {
	return Config{
		DefaultLocale: defaultLocale,
		Locales:       locales,
		StorageKey:    storageKey,
	}
}

// IsConfigured reports whether code is one of the configured locales.
// Comparison is case-insensitive.
func (c Config) IsConfigured(code string) bool {
	normalized := NormalizeCode(code)
	if normalized == "" {
		return false
	}
	for _, locale := range c.Locales {
		if NormalizeCode(locale) == normalized {
			return true
		}
	}
	return false
}

// NormalizeCode lower-cases and trims a locale code.
func NormalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
