package i18n

import (
	"context"
	"errors"
	"testing"
	"time"
)

type failingStore struct {
	getErr error
	setErr error
	code   string
}

func (s *failingStore) Get(context.Context) (string, error) {
	return s.code, s.getErr
}

func (s *failingStore) Set(_ context.Context, code string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.code = code
	return nil
}

func assertChange(t *testing.T, events <-chan ChangeEvent, code string) {
	t.Helper()
	select {
	case evt := <-events:
		if evt.Code != code {
			t.Fatalf("event code = %q, want %q", evt.Code, code)
		}
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for change event %q", code)
	}
}

func assertNoChange(t *testing.T, events <-chan ChangeEvent) {
	t.Helper()
	select {
	case evt := <-events:
		t.Fatalf("unexpected change event %+v", evt)
	default:
	}
}

func TestResolveInitialPrefersStoredPreference(t *testing.T) {
	store := NewMemoryPreferenceStore()
	if err := store.Set(t.Context(), "ta"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	manager := NewManager(testConfig(), store)
	if got := manager.ResolveInitial(t.Context(), "si-LK"); got != "ta" {
		t.Fatalf("ResolveInitial() = %q, want stored preference", got)
	}
	if got := manager.Active(); got != "ta" {
		t.Fatalf("Active() = %q", got)
	}
}

func TestResolveInitialUsesBrowserBaseLanguage(t *testing.T) {
	manager := NewManager(testConfig(), NewMemoryPreferenceStore())

	if got := manager.ResolveInitial(t.Context(), "si-LK"); got != "si" {
		t.Fatalf("ResolveInitial() = %q, want region-stripped browser language", got)
	}
}

func TestResolveInitialFallsBackToDefault(t *testing.T) {
	cases := []struct {
		name       string
		browserTag string
	}{
		{"unconfigured browser language", "fr-FR"},
		{"malformed tag", "!!"},
		{"empty tag", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			manager := NewManager(testConfig(), NewMemoryPreferenceStore())
			if got := manager.ResolveInitial(t.Context(), tc.browserTag); got != "en" {
				t.Fatalf("ResolveInitial(%q) = %q, want default", tc.browserTag, got)
			}
		})
	}
}

func TestResolveInitialIgnoresInvalidStoredPreference(t *testing.T) {
	store := NewMemoryPreferenceStore()
	store.code = "fr"

	manager := NewManager(testConfig(), store)
	if got := manager.ResolveInitial(t.Context(), "ta-IN"); got != "ta" {
		t.Fatalf("ResolveInitial() = %q, want browser language over invalid stored code", got)
	}
}

func TestResolveInitialSurvivesStoreReadFailure(t *testing.T) {
	store := &failingStore{getErr: errors.New("boom")}

	manager := NewManager(testConfig(), store)
	if got := manager.ResolveInitial(t.Context(), "si"); got != "si" {
		t.Fatalf("ResolveInitial() = %q", got)
	}
}

func TestChangeLanguageAppliesAndNotifies(t *testing.T) {
	store := NewMemoryPreferenceStore()
	var hooked []string
	manager := NewManager(testConfig(), store,
		WithChangeHook(func(code string) { hooked = append(hooked, code) }),
	)

	events, err := manager.Subscribe(t.Context())
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	if !manager.ChangeLanguage(t.Context(), "SI") {
		t.Fatal("ChangeLanguage() = false")
	}

	if got := manager.Active(); got != "si" {
		t.Fatalf("Active() = %q", got)
	}
	if stored, _ := store.Get(t.Context()); stored != "si" {
		t.Fatalf("stored preference = %q", stored)
	}
	assertChange(t, events, "si")
	if len(hooked) != 1 || hooked[0] != "si" {
		t.Fatalf("hooks = %v", hooked)
	}
}

func TestChangeLanguageIgnoresUnconfiguredCode(t *testing.T) {
	store := NewMemoryPreferenceStore()
	manager := NewManager(testConfig(), store)
	manager.ResolveInitial(t.Context(), "")

	events, err := manager.Subscribe(t.Context())
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	if manager.ChangeLanguage(t.Context(), "fr") {
		t.Fatal("ChangeLanguage() = true for unconfigured code")
	}

	if got := manager.Active(); got != "en" {
		t.Fatalf("Active() = %q, want unchanged", got)
	}
	if stored, _ := store.Get(t.Context()); stored != "" {
		t.Fatalf("stored preference = %q, want empty", stored)
	}
	assertNoChange(t, events)
}

func TestChangeLanguagePersistFailureIsNonFatal(t *testing.T) {
	store := &failingStore{setErr: errors.New("disk full")}
	manager := NewManager(testConfig(), store)

	if !manager.ChangeLanguage(t.Context(), "ta") {
		t.Fatal("ChangeLanguage() = false")
	}
	if got := manager.Active(); got != "ta" {
		t.Fatalf("Active() = %q, in-memory state must stay authoritative", got)
	}
}

func TestSubscribeStopsOnContextCancel(t *testing.T) {
	manager := NewManager(testConfig(), nil)

	ctx, cancel := context.WithCancel(t.Context())
	events, err := manager.Subscribe(ctx)
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	cancel()

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after context cancel")
		}
	}
}

func TestFilePreferenceStoreRoundTrip(t *testing.T) {
	store, err := NewFilePreferenceStore(t.TempDir(), "portal-lang")
	if err != nil {
		t.Fatalf("NewFilePreferenceStore() error = %v", err)
	}

	if got, err := store.Get(t.Context()); err != nil || got != "" {
		t.Fatalf("Get() on empty store = %q, %v", got, err)
	}

	if err := store.Set(t.Context(), "SI"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got, err := store.Get(t.Context()); err != nil || got != "si" {
		t.Fatalf("Get() = %q, %v", got, err)
	}
}
