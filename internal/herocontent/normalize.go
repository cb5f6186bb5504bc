package herocontent

// Normalizer turns raw, possibly partial or legacy-shaped page documents into
// the canonical PageContent shape. It owns the one-way mirror sync between
// the primary language's translation slot and the hero's flat legacy fields.
//
// Cross-language fallback is deliberately absent here: a missing field fills
// from the empty template, never from another language, so admin-edited
// content cannot leak the wrong language into a locale's display.
type Normalizer struct {
	locales []string
	primary string
}

// NewNormalizer constructs a normalizer for the configured locale set. The
// primary locale's slot feeds the legacy mirror fields.
func NewNormalizer(locales []string, primary string) *Normalizer {
	if primary == "" {
		primary = "en"
	}
	codes := make([]string, 0, len(locales))
	seen := map[string]struct{}{}
	for _, code := range locales {
		if _, dup := seen[code]; dup || code == "" {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	if _, ok := seen[primary]; !ok {
		codes = append(codes, primary)
	}
	return &Normalizer{locales: codes, primary: primary}
}

// Locales returns the configured locale codes.
func (n *Normalizer) Locales() []string {
	out := make([]string, len(n.locales))
	copy(out, n.locales)
	return out
}

// Primary returns the primary locale code.
func (n *Normalizer) Primary() string {
	return n.primary
}

// Normalize converts a raw store document into the canonical shape. The
// input is never aliased: every map and list is copied. The result satisfies
// the data model invariants: hero, translations, images, and metadata all
// exist, every configured locale has every field defined, and the legacy
// mirror reflects the current primary-language slot.
func (n *Normalizer) Normalize(raw Document) *PageContent {
	heroRaw := asMap(raw["hero"])
	translationsRaw := asMap(heroRaw["translations"])
	gallery := stringList(heroRaw["images"])

	pc := &PageContent{
		Hero: Hero{
			Images:       gallery,
			Translations: make(map[string]HeroTranslation, len(n.locales)),
		},
	}

	for _, code := range n.locales {
		slot := EmptyHeroTranslation()
		if slotRaw := asMap(translationsRaw[code]); slotRaw != nil {
			overlayTranslation(&slot, slotRaw)
		}
		pc.Hero.Translations[code] = slot
	}
	// Locales outside the configured set ride along untouched so a shrunken
	// config never destroys previously entered content.
	for code, value := range translationsRaw {
		if _, configured := pc.Hero.Translations[code]; configured {
			continue
		}
		slot := HeroTranslation{Images: []string{}}
		if slotRaw := asMap(value); slotRaw != nil {
			overlayTranslation(&slot, slotRaw)
		}
		pc.Hero.Translations[code] = slot
	}

	n.migrateLegacyHero(pc, heroRaw, gallery)

	pc.Hero.Extra = heroExtras(heroRaw)
	n.syncMirror(&pc.Hero)

	pc.Sections = anyList(raw["sections"])
	pc.Metadata = decodeMetadata(asMap(raw["metadata"]))
	pc.Extra = topLevelExtras(raw)

	return pc
}

// migrateLegacyHero copies flat hero fields written before the multi-language
// schema into the primary slot. Triggered only when the document carries a
// top-level title while the primary slot's title is still empty, so already
// migrated documents are left alone.
func (n *Normalizer) migrateLegacyHero(pc *PageContent, heroRaw Document, gallery []string) {
	flatTitle := stringValue(heroRaw[FieldTitle])
	slot := pc.Hero.Translations[n.primary]
	if flatTitle == "" || slot.Title != "" {
		return
	}

	slot.Badge = stringValue(heroRaw[FieldBadge])
	slot.Subheading = aliasedString(heroRaw, "subtitle", FieldSubheading)
	slot.Title = flatTitle
	slot.Highlight = stringValue(heroRaw[FieldHighlight])
	slot.Description = stringValue(heroRaw[FieldDescription])
	slot.PrimaryCtaLabel = aliasedString(heroRaw, "ctaText", FieldPrimaryCtaLabel)
	slot.SecondaryCtaLabel = stringValue(heroRaw[FieldSecondaryCtaLabel])
	slot.LeftStatLabel = stringValue(heroRaw[FieldLeftStatLabel])
	slot.LeftStatValue = stringValue(heroRaw[FieldLeftStatValue])
	slot.RightStatLabel = stringValue(heroRaw[FieldRightStatLabel])
	slot.RightStatValue = stringValue(heroRaw[FieldRightStatValue])
	slot.Image = stringValue(heroRaw[FieldImage])
	slot.Images = cloneStrings(gallery)

	pc.Hero.Translations[n.primary] = slot
}

// syncMirror overwrites the hero's flat fields from the current primary slot.
// One way only. The shared gallery wins over the slot's images; when the
// gallery is empty the slot's non-empty entries seed it.
func (n *Normalizer) syncMirror(h *Hero) {
	english, ok := h.Translations[n.primary]
	if !ok {
		english = EmptyHeroTranslation()
	}

	gallery := h.Images
	h.Mirror = english.clone()
	if len(gallery) > 0 {
		h.Images = cloneStrings(gallery)
	} else {
		h.Images = filterEmpty(english.Images)
	}
}

// Document serializes the canonical content back to the raw store shape.
// Preserved extras are emitted alongside the structured fields so a
// full-document upsert never loses keys this module does not model.
func (pc *PageContent) Document() Document {
	if pc == nil {
		return Document{}
	}

	hero := deepCopyMap(pc.Hero.Extra)
	for _, name := range FieldNames() {
		value, _ := pc.Hero.Mirror.Field(name)
		hero[name] = value
	}
	hero["images"] = stringsToAny(pc.Hero.Images)

	translations := make(map[string]any, len(pc.Hero.Translations))
	for code, slot := range pc.Hero.Translations {
		translations[code] = encodeTranslation(slot)
	}
	hero["translations"] = translations

	doc := deepCopyMap(pc.Extra)
	doc["hero"] = hero
	doc["sections"] = deepCopyList(pc.Sections)

	meta := deepCopyMap(pc.Metadata.Extra)
	meta["title"] = pc.Metadata.Title
	meta["description"] = pc.Metadata.Description
	meta["keywords"] = pc.Metadata.Keywords
	doc["metadata"] = meta

	return doc
}

func overlayTranslation(slot *HeroTranslation, raw Document) {
	for _, name := range FieldNames() {
		if value, ok := raw[name]; ok {
			if s, ok := value.(string); ok {
				_ = slot.SetField(name, s)
			}
		}
	}
	if _, ok := raw["images"]; ok {
		slot.Images = stringList(raw["images"])
	}
}

func encodeTranslation(slot HeroTranslation) map[string]any {
	out := make(map[string]any, len(FieldNames())+1)
	for _, name := range FieldNames() {
		value, _ := slot.Field(name)
		out[name] = value
	}
	out["images"] = stringsToAny(slot.Images)
	return out
}

func decodeMetadata(raw Document) Metadata {
	meta := Metadata{
		Title:       stringValue(raw["title"]),
		Description: stringValue(raw["description"]),
		Keywords:    stringValue(raw["keywords"]),
		Extra:       map[string]any{},
	}
	for key, value := range raw {
		switch key {
		case "title", "description", "keywords":
		default:
			meta.Extra[key] = deepCopyValue(value)
		}
	}
	return meta
}

func heroExtras(heroRaw Document) map[string]any {
	known := map[string]struct{}{"images": {}, "translations": {}}
	for _, name := range FieldNames() {
		known[name] = struct{}{}
	}
	extras := map[string]any{}
	for key, value := range heroRaw {
		if _, ok := known[key]; ok {
			continue
		}
		extras[key] = deepCopyValue(value)
	}
	return extras
}

func topLevelExtras(raw Document) map[string]any {
	extras := map[string]any{}
	for key, value := range raw {
		switch key {
		case "hero", "sections", "metadata":
		default:
			extras[key] = deepCopyValue(value)
		}
	}
	return extras
}
