package herocontent

import "errors"

// Document is the raw, schema-less shape exchanged with the document store.
// Everything inside the normalizer validates at this boundary so the rest of
// the module only ever sees the canonical structs below.
type Document = map[string]any

// ErrUnknownLocale rejects edits against a locale outside the configured set.
var ErrUnknownLocale = errors.New("herocontent: unknown locale")

// ErrUnknownField rejects edits against a field outside the hero schema.
var ErrUnknownField = errors.New("herocontent: unknown hero field")

// ErrImageIndexOutOfRange rejects gallery edits past the current bounds.
var ErrImageIndexOutOfRange = errors.New("herocontent: gallery image index out of range")

// ErrNilContent rejects operations on a nil document.
var ErrNilContent = errors.New("herocontent: content document is required")

// Hero field names as stored in documents.
const (
	FieldBadge             = "badge"
	FieldSubheading        = "subheading"
	FieldTitle             = "title"
	FieldHighlight         = "highlight"
	FieldDescription       = "description"
	FieldPrimaryCtaLabel   = "primaryCtaLabel"
	FieldPrimaryCtaIcon    = "primaryCtaIcon"
	FieldSecondaryCtaLabel = "secondaryCtaLabel"
	FieldSecondaryCtaIcon  = "secondaryCtaIcon"
	FieldLeftStatLabel     = "leftStatLabel"
	FieldLeftStatValue     = "leftStatValue"
	FieldRightStatLabel    = "rightStatLabel"
	FieldRightStatValue    = "rightStatValue"
	FieldImage             = "image"
)

// FieldNames lists every editable hero translation field, in document order.
func FieldNames() []string {
	return []string{
		FieldBadge,
		FieldSubheading,
		FieldTitle,
		FieldHighlight,
		FieldDescription,
		FieldPrimaryCtaLabel,
		FieldPrimaryCtaIcon,
		FieldSecondaryCtaLabel,
		FieldSecondaryCtaIcon,
		FieldLeftStatLabel,
		FieldLeftStatValue,
		FieldRightStatLabel,
		FieldRightStatValue,
		FieldImage,
	}
}

// HeroTranslation is one language's hero content. After normalization every
// field is defined; missing values default to the empty string, never to
// another language's value.
type HeroTranslation struct {
	Badge             string
	Subheading        string
	Title             string
	Highlight         string
	Description       string
	PrimaryCtaLabel   string
	PrimaryCtaIcon    string
	SecondaryCtaLabel string
	SecondaryCtaIcon  string
	LeftStatLabel     string
	LeftStatValue     string
	RightStatLabel    string
	RightStatValue    string
	Image             string
	Images            []string
}

// EmptyHeroTranslation returns the fixed fill template. The icon defaults
// match the admin editor's stock icons.
func EmptyHeroTranslation() HeroTranslation {
	return HeroTranslation{
		PrimaryCtaIcon:   "Map",
		SecondaryCtaIcon: "Heart",
		Images:           []string{},
	}
}

// Field returns the named field's value.
func (t HeroTranslation) Field(name string) (string, error) {
	switch name {
	case FieldBadge:
		return t.Badge, nil
	case FieldSubheading:
		return t.Subheading, nil
	case FieldTitle:
		return t.Title, nil
	case FieldHighlight:
		return t.Highlight, nil
	case FieldDescription:
		return t.Description, nil
	case FieldPrimaryCtaLabel:
		return t.PrimaryCtaLabel, nil
	case FieldPrimaryCtaIcon:
		return t.PrimaryCtaIcon, nil
	case FieldSecondaryCtaLabel:
		return t.SecondaryCtaLabel, nil
	case FieldSecondaryCtaIcon:
		return t.SecondaryCtaIcon, nil
	case FieldLeftStatLabel:
		return t.LeftStatLabel, nil
	case FieldLeftStatValue:
		return t.LeftStatValue, nil
	case FieldRightStatLabel:
		return t.RightStatLabel, nil
	case FieldRightStatValue:
		return t.RightStatValue, nil
	case FieldImage:
		return t.Image, nil
	default:
		return "", ErrUnknownField
	}
}

// SetField assigns the named field.
func (t *HeroTranslation) SetField(name, value string) error {
	switch name {
	case FieldBadge:
		t.Badge = value
	case FieldSubheading:
		t.Subheading = value
	case FieldTitle:
		t.Title = value
	case FieldHighlight:
		t.Highlight = value
	case FieldDescription:
		t.Description = value
	case FieldPrimaryCtaLabel:
		t.PrimaryCtaLabel = value
	case FieldPrimaryCtaIcon:
		t.PrimaryCtaIcon = value
	case FieldSecondaryCtaLabel:
		t.SecondaryCtaLabel = value
	case FieldSecondaryCtaIcon:
		t.SecondaryCtaIcon = value
	case FieldLeftStatLabel:
		t.LeftStatLabel = value
	case FieldLeftStatValue:
		t.LeftStatValue = value
	case FieldRightStatLabel:
		t.RightStatLabel = value
	case FieldRightStatValue:
		t.RightStatValue = value
	case FieldImage:
		t.Image = value
	default:
		return ErrUnknownField
	}
	return nil
}

func (t HeroTranslation) clone() HeroTranslation {
	copied := t
	copied.Images = cloneStrings(t.Images)
	return copied
}

// Hero is the page banner block: the per-language translations map, the
// shared image gallery, and a denormalized mirror of the primary language's
// fields kept for renderers that predate the multi-language schema.
type Hero struct {
	// Mirror holds the primary-language translation flattened to the hero's
	// top level. Synced one way, translations -> mirror, never back.
	Mirror HeroTranslation
	// Images is the ordered hero carousel gallery. Entries may be empty
	// strings while an administrator is still typing a URL.
	Images []string
	// Translations is keyed by configured locale code.
	Translations map[string]HeroTranslation
	// Extra preserves unrecognized hero keys (legacy CTA links and similar)
	// across the load/save round trip.
	Extra map[string]any
}

// Metadata carries the page's SEO fields.
type Metadata struct {
	Title       string
	Description string
	Keywords    string
	// Extra preserves unrecognized metadata keys.
	Extra map[string]any
}

// PageContent is the canonical, fully populated page document. Safe to bind
// directly to form inputs: every configured language has every hero field
// defined.
type PageContent struct {
	Hero     Hero
	Sections []any
	Metadata Metadata
	// Extra preserves unrecognized top-level keys so full-document upserts
	// never drop data this module does not understand.
	Extra map[string]any
}

func (pc *PageContent) clone() *PageContent {
	if pc == nil {
		return nil
	}
	translations := make(map[string]HeroTranslation, len(pc.Hero.Translations))
	for code, slot := range pc.Hero.Translations {
		translations[code] = slot.clone()
	}
	return &PageContent{
		Hero: Hero{
			Mirror:       pc.Hero.Mirror.clone(),
			Images:       cloneStrings(pc.Hero.Images),
			Translations: translations,
			Extra:        deepCopyMap(pc.Hero.Extra),
		},
		Sections: deepCopyList(pc.Sections),
		Metadata: Metadata{
			Title:       pc.Metadata.Title,
			Description: pc.Metadata.Description,
			Keywords:    pc.Metadata.Keywords,
			Extra:       deepCopyMap(pc.Metadata.Extra),
		},
		Extra: deepCopyMap(pc.Extra),
	}
}

func cloneStrings(src []string) []string {
	if src == nil {
		return []string{}
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
