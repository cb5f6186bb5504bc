package i18n

import (
	"sort"
	"strings"
)

// Bundle holds the complete translation resources for every configured
// locale: locale -> namespace -> nested key/value document. Bundles are
// populated once at startup and treated as immutable afterwards, so lookups
// need no locking.
type Bundle struct {
	resources map[string]map[string]map[string]any
}

// NewBundle returns an empty bundle.
func NewBundle() *Bundle {
	return &Bundle{
		resources: make(map[string]map[string]map[string]any),
	}
}

// AddNamespace registers the document for a (locale, namespace) pair,
// replacing any previous registration.
func (b *Bundle) AddNamespace(locale, namespace string, doc map[string]any) {
	locale = NormalizeCode(locale)
	namespace = strings.TrimSpace(namespace)
	if locale == "" || namespace == "" {
		return
	}
	if doc == nil {
		doc = map[string]any{}
	}
	if b.resources[locale] == nil {
		b.resources[locale] = make(map[string]map[string]any)
	}
	b.resources[locale][namespace] = doc
}

// Lookup walks the dot-delimited key path inside the namespace document for
// the locale. The returned value may be a string, a list, or a nested object.
func (b *Bundle) Lookup(locale, namespace, keyPath string) (any, bool) {
	if b == nil {
		return nil, false
	}
	namespaces, ok := b.resources[NormalizeCode(locale)]
	if !ok {
		return nil, false
	}
	doc, ok := namespaces[namespace]
	if !ok {
		return nil, false
	}

	var current any = doc
	for _, segment := range strings.Split(keyPath, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = node[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Locales lists locales with at least one registered namespace, sorted.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.resources))
	for locale := range b.resources {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Namespaces lists the namespaces registered for a locale, sorted.
func (b *Bundle) Namespaces(locale string) []string {
	if b == nil {
		return nil
	}
	namespaces, ok := b.resources[NormalizeCode(locale)]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(namespaces))
	for name := range namespaces {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
