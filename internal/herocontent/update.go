package herocontent

// UpdateTranslationField replaces a single field in a single language's slot.
// Other languages and fields are untouched. Editing the primary language
// immediately re-runs the mirror sync so legacy renderers and live previews
// see the edit without a save round trip.
func (n *Normalizer) UpdateTranslationField(pc *PageContent, locale, field, value string) error {
	if pc == nil {
		return ErrNilContent
	}
	slot, ok := pc.Hero.Translations[locale]
	if !ok {
		return ErrUnknownLocale
	}
	if err := slot.SetField(field, value); err != nil {
		return err
	}
	pc.Hero.Translations[locale] = slot

	if locale == n.primary {
		n.syncMirror(&pc.Hero)
	}
	return nil
}

// AppendGalleryImage adds a slot to the hero carousel. Empty URLs are legal
// placeholders an administrator fills in afterwards.
func (n *Normalizer) AppendGalleryImage(pc *PageContent, url string) error {
	if pc == nil {
		return ErrNilContent
	}
	pc.Hero.Images = append(pc.Hero.Images, url)
	return nil
}

// SetGalleryImage replaces the entry at index.
func (n *Normalizer) SetGalleryImage(pc *PageContent, index int, url string) error {
	if pc == nil {
		return ErrNilContent
	}
	if index < 0 || index >= len(pc.Hero.Images) {
		return ErrImageIndexOutOfRange
	}
	pc.Hero.Images[index] = url
	return nil
}

// RemoveGalleryImage splices the entry at index out of the gallery. Sibling
// entries keep their relative order; indices above the removed entry shift
// down by one.
func (n *Normalizer) RemoveGalleryImage(pc *PageContent, index int) error {
	if pc == nil {
		return ErrNilContent
	}
	if index < 0 || index >= len(pc.Hero.Images) {
		return ErrImageIndexOutOfRange
	}
	pc.Hero.Images = append(pc.Hero.Images[:index], pc.Hero.Images[index+1:]...)
	return nil
}
