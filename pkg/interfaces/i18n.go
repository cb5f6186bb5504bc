package interfaces

import "context"

// LocalePreference exposes the process-wide active language cell.
type LocalePreference interface {
	// Active returns the locale code currently in effect.
	Active() string
	// ChangeLanguage switches the active locale. It reports false when the
	// code is not configured, in which case the active locale is unchanged.
	ChangeLanguage(ctx context.Context, code string) bool
}
