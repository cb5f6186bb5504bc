package portal

import "github.com/naradigital/go-portal/internal/runtimeconfig"

var (
	ErrDefaultLocaleRequired      = runtimeconfig.ErrDefaultLocaleRequired
	ErrDefaultLocaleNotConfigured = runtimeconfig.ErrDefaultLocaleNotConfigured
	ErrLocalesRequired            = runtimeconfig.ErrLocalesRequired
	ErrDuplicateLocale            = runtimeconfig.ErrDuplicateLocale
	ErrLoggingProviderRequired    = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown     = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid        = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid       = runtimeconfig.ErrLoggingFormatInvalid
	ErrImageGenBaseURLRequired    = runtimeconfig.ErrImageGenBaseURLRequired
	ErrCacheTTLInvalid            = runtimeconfig.ErrCacheTTLInvalid

	ErrCacheFeatureRequiresEnabledCache = runtimeconfig.ErrCacheFeatureRequiresEnabledCache
)

type (
	Config         = runtimeconfig.Config
	I18NConfig     = runtimeconfig.I18NConfig
	ContentConfig  = runtimeconfig.ContentConfig
	StorageConfig  = runtimeconfig.StorageConfig
	CacheConfig    = runtimeconfig.CacheConfig
	ImageGenConfig = runtimeconfig.ImageGenConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
	Features       = runtimeconfig.Features
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
