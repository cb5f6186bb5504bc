package i18n

import (
	"fmt"
	"strings"
)

// ActiveSource reports the currently active locale. *Manager satisfies it;
// tests can supply a fixed value.
type ActiveSource interface {
	Active() string
}

type staticLocale string

func (s staticLocale) Active() string { return string(s) }

// StaticLocale returns an ActiveSource pinned to one code.
func StaticLocale(code string) ActiveSource { return staticLocale(NormalizeCode(code)) }

// TranslateOption adjusts a single translation call.
type TranslateOption func(*translateOptions)

type translateOptions struct {
	locale string
	params map[string]any
}

// WithLocale overrides the active locale for one call.
func WithLocale(code string) TranslateOption {
	return func(o *translateOptions) {
		o.locale = NormalizeCode(code)
	}
}

// WithParams supplies interpolation parameters substituted into {{name}}
// placeholders of the resolved string.
func WithParams(params map[string]any) TranslateOption {
	return func(o *translateOptions) {
		o.params = params
	}
}

// Translator resolves namespaced keys against a bundle with a deterministic
// fallback chain: active locale, then the default locale, then the literal
// key path. It never fails: every call returns a renderable value, because
// dozens of call sites bind the result straight into rendered output.
type Translator struct {
	bundle *Bundle
	cfg    Config
	active ActiveSource
}

// NewTranslator wires a translator over an immutable bundle. The active
// source is consulted on every call so locale changes take effect without
// re-construction.
func NewTranslator(bundle *Bundle, cfg Config, active ActiveSource) *Translator {
	if bundle == nil {
		bundle = NewBundle()
	}
	if active == nil {
		active = StaticLocale(cfg.DefaultLocale)
	}
	return &Translator{bundle: bundle, cfg: cfg, active: active}
}

// Translate resolves the key to a string. Structured values (lists, nested
// objects) do not satisfy a string request and degrade through the chain the
// same way a missing key does; use TranslateObject to receive them.
func (t *Translator) Translate(namespace, key string, opts ...TranslateOption) string {
	o := t.applyOptions(opts)

	if value, ok := t.bundle.Lookup(o.locale, namespace, key); ok {
		if s, ok := value.(string); ok {
			return interpolate(s, o.params)
		}
	}
	if value, ok := t.bundle.Lookup(t.cfg.DefaultLocale, namespace, key); ok {
		if s, ok := value.(string); ok {
			return interpolate(s, o.params)
		}
	}
	return key
}

// TranslateObject resolves the key to its raw value: string, list, or nested
// object. Several pages store structured content (menu items, FAQ entries) as
// translation values and request them wholesale. Falls back to the default
// locale, then to the literal key path.
func (t *Translator) TranslateObject(namespace, key string, opts ...TranslateOption) any {
	o := t.applyOptions(opts)

	if value, ok := t.bundle.Lookup(o.locale, namespace, key); ok {
		return value
	}
	if value, ok := t.bundle.Lookup(t.cfg.DefaultLocale, namespace, key); ok {
		return value
	}
	return key
}

// Resolve reads the key for an explicit locale without the fallback chain.
func (t *Translator) Resolve(locale, namespace, key string) (any, bool) {
	return t.bundle.Lookup(locale, namespace, key)
}

// DefaultLocale exposes the configured fallback locale.
func (t *Translator) DefaultLocale() string {
	return NormalizeCode(t.cfg.DefaultLocale)
}

func (t *Translator) applyOptions(opts []TranslateOption) translateOptions {
	o := translateOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.locale == "" {
		o.locale = NormalizeCode(t.active.Active())
	}
	if o.locale == "" {
		o.locale = NormalizeCode(t.cfg.DefaultLocale)
	}
	return o
}

func interpolate(value string, params map[string]any) string {
	if len(params) == 0 || !strings.Contains(value, "{{") {
		return value
	}
	for name, param := range params {
		value = strings.ReplaceAll(value, "{{"+name+"}}", fmt.Sprint(param))
	}
	return value
}
