package i18n

import (
	"context"
	"sync"

	"golang.org/x/text/language"

	"github.com/naradigital/go-portal/internal/logging"
	"github.com/naradigital/go-portal/pkg/interfaces"
)

// PreferenceStore persists the selected locale under the well-known storage
// key. Get returns an empty string when no preference has been stored.
type PreferenceStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, code string) error
}

// ChangeHook runs synchronously after a successful language change, in
// registration order. The document-language attribute update lives here.
type ChangeHook func(code string)

// Manager owns the process-wide active locale. It is initialized once via
// ResolveInitial and mutated only through ChangeLanguage; it always holds a
// valid configured code.
type Manager struct {
	cfg         Config
	store       PreferenceStore
	logger      interfaces.Logger
	broadcaster *changeBroadcaster
	hooks       []ChangeHook

	mu     sync.RWMutex
	active string
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithManagerLogger injects the logger used for preference warnings.
func WithManagerLogger(logger interfaces.Logger) ManagerOption {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithChangeHook registers a synchronous hook invoked after every applied
// language change.
func WithChangeHook(hook ChangeHook) ManagerOption {
	return func(m *Manager) {
		if hook != nil {
			m.hooks = append(m.hooks, hook)
		}
	}
}

// NewManager constructs a preference manager seeded with the default locale.
// A nil store disables persistence but keeps the in-memory cell working.
func NewManager(cfg Config, store PreferenceStore, opts ...ManagerOption) *Manager {
	m := &Manager{
		cfg:         cfg,
		store:       store,
		logger:      logging.NoOp(),
		broadcaster: newChangeBroadcaster(),
		active:      NormalizeCode(cfg.DefaultLocale),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var _ interfaces.LocalePreference = (*Manager)(nil)

// ResolveInitial determines the startup locale: stored preference when it is
// a configured code, otherwise the browser-negotiated tag with its region
// stripped, otherwise the static default. It always leaves the manager with
// a valid configured code and never fails.
func (m *Manager) ResolveInitial(ctx context.Context, browserTag string) string {
	resolved := NormalizeCode(m.cfg.DefaultLocale)

	if stored := m.storedPreference(ctx); stored != "" {
		resolved = stored
	} else if base := baseLanguage(browserTag); m.cfg.IsConfigured(base) {
		resolved = base
	}

	m.mu.Lock()
	m.active = resolved
	m.mu.Unlock()
	return resolved
}

// Active returns the current locale. Always a configured code.
func (m *Manager) Active() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.active
}

// ChangeLanguage applies a user-driven language change. Unconfigured codes
// are ignored: the active language stays put, nothing is broadcast, and the
// call reports false. On success the in-memory cell is updated first, the
// preference is persisted (a write failure is logged and otherwise ignored;
// the in-memory state stays authoritative for the session), subscribers are
// notified, and change hooks run synchronously.
func (m *Manager) ChangeLanguage(ctx context.Context, code string) bool {
	normalized := NormalizeCode(code)
	if !m.cfg.IsConfigured(normalized) {
		m.logger.Debug("i18n.change_language.ignored", "code", code)
		return false
	}

	m.mu.Lock()
	m.active = normalized
	m.mu.Unlock()

	if m.store != nil {
		if err := m.store.Set(ctx, normalized); err != nil {
			m.logger.Warn("i18n.preference.persist_failed", "code", normalized, "error", err)
		}
	}

	m.broadcaster.Broadcast(ChangeEvent{Code: normalized})
	for _, hook := range m.hooks {
		hook(normalized)
	}

	m.logger.Info("i18n.change_language.applied", "code", normalized)
	return true
}

// Subscribe delivers change events until the context is cancelled. Listeners
// registered before a ChangeLanguage call observe the new code.
func (m *Manager) Subscribe(ctx context.Context) (<-chan ChangeEvent, error) {
	return m.broadcaster.Subscribe(ctx)
}

func (m *Manager) storedPreference(ctx context.Context) string {
	if m.store == nil {
		return ""
	}
	stored, err := m.store.Get(ctx)
	if err != nil {
		m.logger.Warn("i18n.preference.read_failed", "error", err)
		return ""
	}
	stored = NormalizeCode(stored)
	if !m.cfg.IsConfigured(stored) {
		return ""
	}
	return stored
}

// baseLanguage strips any region suffix from a BCP 47 tag ("en-US" -> "en").
// Malformed tags resolve to empty, which the caller treats as no match.
func baseLanguage(tag string) string {
	trimmed := NormalizeCode(tag)
	if trimmed == "" {
		return ""
	}
	parsed, err := language.Parse(trimmed)
	if err != nil {
		return ""
	}
	base, confidence := parsed.Base()
	if confidence == language.No {
		return ""
	}
	return base.String()
}
