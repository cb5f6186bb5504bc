package herocontent

import "time"

// DefaultEditor identifies save operations made without an explicit identity.
const DefaultEditor = "admin"

// PrepareForPersistence builds the full-document upsert payload for a
// possibly-edited document. The hero's flat fields are forcibly re-derived
// from the primary-language slot, so stale top-level values mutated
// out-of-band are never trusted; the legacy migration is never re-run here,
// so a stale mirror can't flow back into the translation slots. The payload
// is stamped with the save time and the editor identity. Idempotent modulo
// the timestamp.
func (n *Normalizer) PrepareForPersistence(pc *PageContent, editor string, now time.Time) Document {
	copied := pc.clone()
	if copied == nil {
		copied = n.Normalize(nil)
	}
	// Mirror sync runs on the copy, so the caller's document is never mutated.
	n.syncMirror(&copied.Hero)
	payload := copied.Document()

	if editor == "" {
		editor = DefaultEditor
	}
	payload["lastUpdated"] = now.UTC().Format(time.RFC3339)
	payload["updatedBy"] = editor
	return payload
}
