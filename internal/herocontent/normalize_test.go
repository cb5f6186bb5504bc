package herocontent

import (
	"reflect"
	"testing"
)

func newTestNormalizer() *Normalizer {
	return NewNormalizer([]string{"en", "si", "ta"}, "en")
}

func TestNormalizeNilDocument(t *testing.T) {
	n := newTestNormalizer()

	pc := n.Normalize(nil)

	if len(pc.Hero.Translations) != 3 {
		t.Fatalf("translations = %d, want 3", len(pc.Hero.Translations))
	}
	for _, code := range []string{"en", "si", "ta"} {
		slot, ok := pc.Hero.Translations[code]
		if !ok {
			t.Fatalf("missing slot for %q", code)
		}
		if slot.PrimaryCtaIcon != "Map" || slot.SecondaryCtaIcon != "Heart" {
			t.Fatalf("slot %q icons = %q/%q, want stock defaults", code, slot.PrimaryCtaIcon, slot.SecondaryCtaIcon)
		}
		if slot.Images == nil {
			t.Fatalf("slot %q images must be non-nil", code)
		}
	}
	if pc.Hero.Images == nil || pc.Sections == nil {
		t.Fatal("gallery and sections must be non-nil after normalization")
	}
}

func TestNormalizeFillsMissingFieldsWithoutCrossLanguageLeak(t *testing.T) {
	n := newTestNormalizer()

	pc := n.Normalize(Document{
		"hero": map[string]any{
			"translations": map[string]any{
				"en": map[string]any{"title": "Ocean Research", "badge": "New"},
				"si": map[string]any{"title": "සාගර පර්යේෂණ"},
			},
		},
	})

	si := pc.Hero.Translations["si"]
	if si.Title != "සාගර පර්යේෂණ" {
		t.Fatalf("si title = %q", si.Title)
	}
	if si.Badge != "" {
		t.Fatalf("si badge = %q, must not inherit the english value", si.Badge)
	}

	ta := pc.Hero.Translations["ta"]
	if ta.Title != "" || ta.Description != "" {
		t.Fatalf("ta slot = %+v, want empty template", ta)
	}
}

func TestNormalizePreservesUnconfiguredLocales(t *testing.T) {
	n := newTestNormalizer()

	pc := n.Normalize(Document{
		"hero": map[string]any{
			"translations": map[string]any{
				"fr": map[string]any{"title": "Recherche"},
			},
		},
	})

	fr, ok := pc.Hero.Translations["fr"]
	if !ok {
		t.Fatal("unconfigured locale content must survive normalization")
	}
	if fr.Title != "Recherche" {
		t.Fatalf("fr title = %q", fr.Title)
	}
	// The empty template with its stock icons applies to configured slots only.
	if fr.PrimaryCtaIcon != "" {
		t.Fatalf("fr primary icon = %q, want untouched zero value", fr.PrimaryCtaIcon)
	}
}

func TestNormalizeMigratesLegacyFlatHero(t *testing.T) {
	n := newTestNormalizer()

	pc := n.Normalize(Document{
		"hero": map[string]any{
			"title":       "Legacy Title",
			"subtitle":    "Legacy Subheading",
			"ctaText":     "Read More",
			"badge":       "Featured",
			"description": "Old description",
			"images":      []any{"a.jpg", "b.jpg"},
		},
	})

	en := pc.Hero.Translations["en"]
	if en.Title != "Legacy Title" {
		t.Fatalf("title = %q", en.Title)
	}
	if en.Subheading != "Legacy Subheading" {
		t.Fatalf("subheading = %q, want value from the subtitle alias", en.Subheading)
	}
	if en.PrimaryCtaLabel != "Read More" {
		t.Fatalf("primary cta = %q, want value from the ctaText alias", en.PrimaryCtaLabel)
	}
	if en.Badge != "Featured" || en.Description != "Old description" {
		t.Fatalf("slot = %+v", en)
	}
	if !reflect.DeepEqual(en.Images, []string{"a.jpg", "b.jpg"}) {
		t.Fatalf("slot images = %v", en.Images)
	}
	// Icons keep the stock defaults, the legacy shape never stored them.
	if en.PrimaryCtaIcon != "Map" || en.SecondaryCtaIcon != "Heart" {
		t.Fatalf("icons = %q/%q", en.PrimaryCtaIcon, en.SecondaryCtaIcon)
	}
	if pc.Hero.Mirror.Title != "Legacy Title" {
		t.Fatalf("mirror title = %q", pc.Hero.Mirror.Title)
	}
}

func TestNormalizeLegacyAliasPresenceWins(t *testing.T) {
	n := newTestNormalizer()

	// An empty aliased key still counts as present: the canonical key is not
	// consulted.
	pc := n.Normalize(Document{
		"hero": map[string]any{
			"title":      "Legacy",
			"subtitle":   "",
			"subheading": "Canonical",
		},
	})

	if got := pc.Hero.Translations["en"].Subheading; got != "" {
		t.Fatalf("subheading = %q, alias presence must win", got)
	}
}

func TestNormalizeSkipsMigrationWhenSlotPopulated(t *testing.T) {
	n := newTestNormalizer()

	pc := n.Normalize(Document{
		"hero": map[string]any{
			"title": "Stale Flat Title",
			"badge": "Stale Badge",
			"translations": map[string]any{
				"en": map[string]any{"title": "Current Title"},
			},
		},
	})

	en := pc.Hero.Translations["en"]
	if en.Title != "Current Title" {
		t.Fatalf("title = %q, migration must not overwrite a populated slot", en.Title)
	}
	if en.Badge != "" {
		t.Fatalf("badge = %q, migration must not fire at all", en.Badge)
	}
	// The mirror is re-derived from the slot, not the stale flat fields.
	if pc.Hero.Mirror.Title != "Current Title" || pc.Hero.Mirror.Badge != "" {
		t.Fatalf("mirror = %+v", pc.Hero.Mirror)
	}
}

func TestNormalizeMirrorMatchesPrimarySlot(t *testing.T) {
	n := newTestNormalizer()

	pc := n.Normalize(Document{
		"hero": map[string]any{
			"translations": map[string]any{
				"en": map[string]any{"title": "Mirror Me", "highlight": "Now"},
				"si": map[string]any{"title": "වෙනත්"},
			},
		},
	})

	if pc.Hero.Mirror.Title != "Mirror Me" || pc.Hero.Mirror.Highlight != "Now" {
		t.Fatalf("mirror = %+v", pc.Hero.Mirror)
	}
}

func TestNormalizeGalleryMergeRule(t *testing.T) {
	n := newTestNormalizer()

	t.Run("top level gallery wins", func(t *testing.T) {
		pc := n.Normalize(Document{
			"hero": map[string]any{
				"images": []any{"top.jpg", ""},
				"translations": map[string]any{
					"en": map[string]any{
						"title":  "T",
						"images": []any{"slot.jpg"},
					},
				},
			},
		})
		if !reflect.DeepEqual(pc.Hero.Images, []string{"top.jpg", ""}) {
			t.Fatalf("gallery = %v, want top-level entries including placeholders", pc.Hero.Images)
		}
	})

	t.Run("empty gallery seeds from primary slot", func(t *testing.T) {
		pc := n.Normalize(Document{
			"hero": map[string]any{
				"translations": map[string]any{
					"en": map[string]any{
						"title":  "T",
						"images": []any{"slot.jpg", "", "other.jpg"},
					},
				},
			},
		})
		if !reflect.DeepEqual(pc.Hero.Images, []string{"slot.jpg", "other.jpg"}) {
			t.Fatalf("gallery = %v, want slot entries with blanks dropped", pc.Hero.Images)
		}
	})
}

func TestNormalizePreservesUnknownKeys(t *testing.T) {
	n := newTestNormalizer()

	raw := Document{
		"hero": map[string]any{
			"ctaLink": "/somewhere",
			"translations": map[string]any{
				"en": map[string]any{"title": "T"},
			},
		},
		"metadata": map[string]any{
			"title":     "SEO",
			"ogImage":   "og.jpg",
			"canonical": "https://example.lk",
		},
		"announcements": []any{"notice"},
	}

	pc := n.Normalize(raw)
	doc := pc.Document()

	hero := doc["hero"].(map[string]any)
	if hero["ctaLink"] != "/somewhere" {
		t.Fatalf("hero extras lost: %v", hero["ctaLink"])
	}
	meta := doc["metadata"].(map[string]any)
	if meta["ogImage"] != "og.jpg" || meta["canonical"] != "https://example.lk" {
		t.Fatalf("metadata extras lost: %v", meta)
	}
	if !reflect.DeepEqual(doc["announcements"], []any{"notice"}) {
		t.Fatalf("top-level extras lost: %v", doc["announcements"])
	}
}

func TestNormalizeDoesNotAliasInput(t *testing.T) {
	n := newTestNormalizer()

	raw := Document{
		"hero": map[string]any{
			"images": []any{"a.jpg"},
			"translations": map[string]any{
				"en": map[string]any{"title": "Original"},
			},
		},
	}

	pc := n.Normalize(raw)
	en := pc.Hero.Translations["en"]
	en.Title = "Mutated"
	pc.Hero.Translations["en"] = en
	pc.Hero.Images[0] = "mutated.jpg"

	slot := raw["hero"].(map[string]any)["translations"].(map[string]any)["en"].(map[string]any)
	if slot["title"] != "Original" {
		t.Fatal("normalization must copy, not alias, the input document")
	}
	if raw["hero"].(map[string]any)["images"].([]any)[0] != "a.jpg" {
		t.Fatal("gallery must be copied, not aliased")
	}
}

func TestNormalizeDocumentRoundTripIsStable(t *testing.T) {
	n := newTestNormalizer()

	raw := Document{
		"hero": map[string]any{
			"images": []any{"a.jpg"},
			"translations": map[string]any{
				"en": map[string]any{"title": "T", "badge": "B"},
				"si": map[string]any{"title": "සි"},
			},
		},
		"metadata": map[string]any{"title": "SEO"},
	}

	once := n.Normalize(raw).Document()
	twice := n.Normalize(once).Document()

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("normalization is not idempotent:\nonce:  %v\ntwice: %v", once, twice)
	}
}

func TestNewNormalizerEnsuresPrimary(t *testing.T) {
	n := NewNormalizer([]string{"si"}, "en")

	locales := n.Locales()
	if !reflect.DeepEqual(locales, []string{"si", "en"}) {
		t.Fatalf("Locales() = %v, want primary appended", locales)
	}

	pc := n.Normalize(nil)
	if _, ok := pc.Hero.Translations["en"]; !ok {
		t.Fatal("primary slot must always exist")
	}
}
