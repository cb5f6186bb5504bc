package di

import (
	"context"
	"time"

	cache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"

	"github.com/naradigital/go-portal/internal/herocontent"
	"github.com/naradigital/go-portal/internal/i18n"
	"github.com/naradigital/go-portal/internal/imagegen"
	"github.com/naradigital/go-portal/internal/logging"
	"github.com/naradigital/go-portal/internal/logging/gologger"
	"github.com/naradigital/go-portal/internal/pagecontent"
	"github.com/naradigital/go-portal/internal/runtimeconfig"
	"github.com/naradigital/go-portal/pkg/interfaces"
)

// Container wires module dependencies. Defaults favour in-memory adapters so
// the module boots without external infrastructure.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider

	bundle    *i18n.Bundle
	prefStore i18n.PreferenceStore
	manager   *i18n.Manager
	translate *i18n.Translator

	bunDB         *bun.DB
	cacheService  cache.CacheService
	keySerializer cache.KeySerializer
	cacheTTL      time.Duration

	contentRepo pagecontent.Repository
	contentSvc  pagecontent.Service

	normalizer *herocontent.Normalizer

	generator imagegen.Generator
	blobs     interfaces.BlobStore
	imageSvc  *imagegen.Service
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the logger provider built from config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithBundle overrides the translation bundle. Takes precedence over the
// configured bundle directory.
func WithBundle(bundle *i18n.Bundle) Option {
	return func(c *Container) {
		c.bundle = bundle
	}
}

// WithPreferenceStore overrides the locale preference store.
func WithPreferenceStore(store i18n.PreferenceStore) Option {
	return func(c *Container) {
		c.prefStore = store
	}
}

// WithBunDB switches the page content repository to the bun-backed
// implementation using the provided database handle.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache enables repository caching with the provided service and serializer.
func WithCache(service cache.CacheService, serializer cache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithContentRepository overrides the page content repository entirely.
func WithContentRepository(repo pagecontent.Repository) Option {
	return func(c *Container) {
		c.contentRepo = repo
	}
}

// WithGenerator overrides the hero image generator.
func WithGenerator(g imagegen.Generator) Option {
	return func(c *Container) {
		c.generator = g
	}
}

// WithBlobStore overrides the blob store receiving generated images.
func WithBlobStore(store interfaces.BlobStore) Option {
	return func(c *Container) {
		c.blobs = store
	}
}

// NewContainer validates the configuration and assembles the module services.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cacheTTL := cfg.Cache.DefaultTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}

	c := &Container{
		Config:   cfg,
		cacheTTL: cacheTTL,
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	if err := c.configureI18N(); err != nil {
		return nil, err
	}
	c.configureContent()
	if err := c.configureImageGen(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Container) configureLogging() error {
	if c.loggerProvider != nil {
		return nil
	}
	if !c.Config.Features.Logger {
		return nil
	}
	provider, err := gologger.NewProvider(gologger.Config{
		Level:     c.Config.Logging.Level,
		Format:    c.Config.Logging.Format,
		AddSource: c.Config.Logging.AddSource,
		Focus:     c.Config.Logging.Focus,
	})
	if err != nil {
		return err
	}
	c.loggerProvider = provider
	return nil
}

func (c *Container) configureI18N() error {
	i18nCfg := i18n.FromModuleConfig(c.Config.DefaultLocale, c.Config.NormalizedLocales(), c.Config.I18N.StorageKey)

	if c.bundle == nil {
		if dir := c.Config.I18N.BundleDir; dir != "" {
			bundle, err := i18n.NewLoader(dir).Load(context.Background())
			if err != nil {
				return err
			}
			c.bundle = bundle
		} else {
			c.bundle = i18n.NewBundle()
		}
	}

	if c.prefStore == nil {
		c.prefStore = i18n.NewMemoryPreferenceStore()
	}

	c.manager = i18n.NewManager(i18nCfg, c.prefStore,
		i18n.WithManagerLogger(logging.I18NLogger(c.loggerProvider)),
	)
	c.translate = i18n.NewTranslator(c.bundle, i18nCfg, c.manager)
	return nil
}

func (c *Container) configureContent() {
	c.normalizer = herocontent.NewNormalizer(c.Config.NormalizedLocales(), c.Config.DefaultLocale)

	if c.contentRepo == nil {
		if c.bunDB != nil {
			if c.Config.Features.Cache && c.cacheService != nil {
				c.contentRepo = pagecontent.NewBunRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
			} else {
				c.contentRepo = pagecontent.NewBunRepository(c.bunDB)
			}
		} else {
			c.contentRepo = pagecontent.NewMemoryRepository()
		}
	}

	c.contentSvc = pagecontent.NewService(c.contentRepo, c.normalizer,
		pagecontent.WithLogger(logging.ContentLogger(c.loggerProvider)),
	)
}

func (c *Container) configureImageGen() error {
	if !c.Config.Features.ImageGeneration {
		return nil
	}

	if c.generator == nil {
		// A nil client lets the generator build one with the configured
		// timeout; http.DefaultClient would never time out a hung call.
		generator, err := imagegen.NewHTTPGenerator(imagegen.Config{
			BaseURL: c.Config.ImageGen.BaseURL,
			Model:   c.Config.ImageGen.Model,
			Width:   c.Config.ImageGen.Width,
			Height:  c.Config.ImageGen.Height,
			Timeout: c.Config.ImageGen.Timeout,
		}, nil)
		if err != nil {
			return err
		}
		c.generator = generator
	}

	if c.blobs == nil {
		c.blobs = imagegen.NewMemoryBlobStore()
	}

	svc, err := imagegen.NewService(c.generator, c.blobs, c.normalizer,
		imagegen.WithServiceLogger(logging.ImageGenLogger(c.loggerProvider)),
	)
	if err != nil {
		return err
	}
	c.imageSvc = svc
	return nil
}

// LoggerProvider exposes the configured logger provider. Nil when logging is disabled.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Bundle returns the translation bundle in use.
func (c *Container) Bundle() *i18n.Bundle {
	return c.bundle
}

// PreferenceManager returns the locale preference manager.
func (c *Container) PreferenceManager() *i18n.Manager {
	return c.manager
}

// Translator returns the configured translator.
func (c *Container) Translator() *i18n.Translator {
	return c.translate
}

// ContentRepository returns the page content repository.
func (c *Container) ContentRepository() pagecontent.Repository {
	return c.contentRepo
}

// ContentService returns the page content service.
func (c *Container) ContentService() pagecontent.Service {
	return c.contentSvc
}

// Normalizer returns the hero content normalizer shared by content and imagegen.
func (c *Container) Normalizer() *herocontent.Normalizer {
	return c.normalizer
}

// ImageService returns the hero image service. Nil when the feature is disabled.
func (c *Container) ImageService() *imagegen.Service {
	return c.imageSvc
}
