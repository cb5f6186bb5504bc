package portal

import (
	"github.com/naradigital/go-portal/internal/di"
	"github.com/naradigital/go-portal/internal/herocontent"
	"github.com/naradigital/go-portal/internal/i18n"
	"github.com/naradigital/go-portal/internal/imagegen"
	"github.com/naradigital/go-portal/internal/pagecontent"
	"github.com/naradigital/go-portal/pkg/interfaces"
)

// ContentService exports the page content service contract for consumers of the portal package.
type ContentService = pagecontent.Service

// SaveRequest exports the page content save request DTO.
type SaveRequest = pagecontent.SaveRequest

// PageDefinition exports the editable-page registry entry.
type PageDefinition = pagecontent.PageDefinition

// PageContent exports the normalized page content aggregate.
type PageContent = herocontent.PageContent

// HeroTranslation exports the per-locale hero block.
type HeroTranslation = herocontent.HeroTranslation

// Document exports the raw document representation exchanged with storage.
type Document = herocontent.Document

// Translator exports the locale-aware translation resolver.
type Translator = i18n.Translator

// LocaleManager exports the active-locale preference manager.
type LocaleManager = i18n.Manager

// LocaleChangeEvent exports the event emitted on locale switches.
type LocaleChangeEvent = i18n.ChangeEvent

// Bundle exports the translation resource bundle.
type Bundle = i18n.Bundle

// PreferenceStore exports the persisted locale preference contract.
type PreferenceStore = i18n.PreferenceStore

// ImageService exports the hero image generation helper.
type ImageService = imagegen.Service

// GenerateRequest exports the hero image generation request DTO.
type GenerateRequest = imagegen.GenerateRequest

// Module represents the top level portal runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a portal module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Translator returns the configured translation resolver.
func (m *Module) Translator() *Translator {
	return m.container.Translator()
}

// Locales returns the locale preference manager.
func (m *Module) Locales() *LocaleManager {
	return m.container.PreferenceManager()
}

// Preferences returns the manager through its narrow preference contract.
func (m *Module) Preferences() interfaces.LocalePreference {
	return m.container.PreferenceManager()
}

// Content returns the configured page content service.
func (m *Module) Content() ContentService {
	return m.container.ContentService()
}

// Images returns the hero image service when the feature is enabled, nil otherwise.
func (m *Module) Images() *ImageService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.ImageService()
}

// DefaultPages returns the portal's built-in editable page registry.
func DefaultPages() []PageDefinition {
	return pagecontent.DefaultPages()
}
