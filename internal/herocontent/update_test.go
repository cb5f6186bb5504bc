package herocontent

import (
	"errors"
	"reflect"
	"testing"
)

func TestUpdateTranslationFieldIsolatesLanguages(t *testing.T) {
	n := newTestNormalizer()
	pc := n.Normalize(Document{
		"hero": map[string]any{
			"translations": map[string]any{
				"en": map[string]any{"title": "English"},
				"si": map[string]any{"title": "සිංහල"},
			},
		},
	})

	if err := n.UpdateTranslationField(pc, "si", FieldTitle, "නව මාතෘකාව"); err != nil {
		t.Fatalf("UpdateTranslationField() error = %v", err)
	}

	if got := pc.Hero.Translations["si"].Title; got != "නව මාතෘකාව" {
		t.Fatalf("si title = %q", got)
	}
	if got := pc.Hero.Translations["en"].Title; got != "English" {
		t.Fatalf("en title = %q, other languages must be untouched", got)
	}
	if got := pc.Hero.Translations["ta"].Title; got != "" {
		t.Fatalf("ta title = %q", got)
	}
}

func TestUpdatePrimaryLanguageResyncsMirror(t *testing.T) {
	n := newTestNormalizer()
	pc := n.Normalize(nil)

	if err := n.UpdateTranslationField(pc, "en", FieldTitle, "Fresh Title"); err != nil {
		t.Fatalf("UpdateTranslationField() error = %v", err)
	}
	if pc.Hero.Mirror.Title != "Fresh Title" {
		t.Fatalf("mirror title = %q, want immediate resync", pc.Hero.Mirror.Title)
	}

	// Non-primary edits leave the mirror alone.
	if err := n.UpdateTranslationField(pc, "ta", FieldTitle, "தலைப்பு"); err != nil {
		t.Fatalf("UpdateTranslationField() error = %v", err)
	}
	if pc.Hero.Mirror.Title != "Fresh Title" {
		t.Fatalf("mirror title = %q after non-primary edit", pc.Hero.Mirror.Title)
	}
}

func TestUpdateTranslationFieldErrors(t *testing.T) {
	n := newTestNormalizer()
	pc := n.Normalize(nil)

	if err := n.UpdateTranslationField(nil, "en", FieldTitle, "x"); !errors.Is(err, ErrNilContent) {
		t.Fatalf("nil content error = %v", err)
	}
	if err := n.UpdateTranslationField(pc, "fr", FieldTitle, "x"); !errors.Is(err, ErrUnknownLocale) {
		t.Fatalf("unknown locale error = %v", err)
	}
	if err := n.UpdateTranslationField(pc, "en", "bogus", "x"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("unknown field error = %v", err)
	}
	// A failed edit changes nothing.
	if got := pc.Hero.Translations["en"].Title; got != "" {
		t.Fatalf("title = %q after failed edits", got)
	}
}

func TestGalleryOperations(t *testing.T) {
	n := newTestNormalizer()
	pc := n.Normalize(nil)

	// Empty URLs are legal placeholders.
	if err := n.AppendGalleryImage(pc, ""); err != nil {
		t.Fatalf("AppendGalleryImage() error = %v", err)
	}
	if err := n.AppendGalleryImage(pc, "b.jpg"); err != nil {
		t.Fatalf("AppendGalleryImage() error = %v", err)
	}
	if err := n.AppendGalleryImage(pc, "c.jpg"); err != nil {
		t.Fatalf("AppendGalleryImage() error = %v", err)
	}

	if err := n.SetGalleryImage(pc, 0, "a.jpg"); err != nil {
		t.Fatalf("SetGalleryImage() error = %v", err)
	}
	if !reflect.DeepEqual(pc.Hero.Images, []string{"a.jpg", "b.jpg", "c.jpg"}) {
		t.Fatalf("gallery = %v", pc.Hero.Images)
	}

	if err := n.RemoveGalleryImage(pc, 1); err != nil {
		t.Fatalf("RemoveGalleryImage() error = %v", err)
	}
	if !reflect.DeepEqual(pc.Hero.Images, []string{"a.jpg", "c.jpg"}) {
		t.Fatalf("gallery after removal = %v, order must be preserved", pc.Hero.Images)
	}
}

func TestGalleryBoundsErrors(t *testing.T) {
	n := newTestNormalizer()
	pc := n.Normalize(nil)

	if err := n.SetGalleryImage(pc, 0, "x.jpg"); !errors.Is(err, ErrImageIndexOutOfRange) {
		t.Fatalf("SetGalleryImage() on empty gallery = %v", err)
	}
	if err := n.RemoveGalleryImage(pc, -1); !errors.Is(err, ErrImageIndexOutOfRange) {
		t.Fatalf("RemoveGalleryImage(-1) = %v", err)
	}
}
