package i18ncmd

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/naradigital/go-portal/internal/commands"
	"github.com/naradigital/go-portal/pkg/interfaces"
)

const changeLanguageMessageType = "portal.i18n.change_language"

// ChangeLanguageCommand requests the active locale to switch to the given code.
type ChangeLanguageCommand struct {
	Code string `json:"code"`
}

// Type implements command.Message.
func (ChangeLanguageCommand) Type() string { return changeLanguageMessageType }

// Validate ensures the message carries a locale code.
func (m ChangeLanguageCommand) Validate() error {
	errs := validation.Errors{}
	if m.Code == "" {
		errs["code"] = validation.NewError("portal.i18n.change_language.code_required", "code is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ChangeLanguageHandler switches the active locale via the preference manager
// using the shared command handler foundation.
type ChangeLanguageHandler struct {
	inner *commands.Handler[ChangeLanguageCommand]
}

// NewChangeLanguageHandler constructs a handler wired to the provided locale preference.
func NewChangeLanguageHandler(pref interfaces.LocalePreference, logger interfaces.Logger, opts ...commands.HandlerOption[ChangeLanguageCommand]) *ChangeLanguageHandler {
	exec := func(ctx context.Context, msg ChangeLanguageCommand) error {
		if !pref.ChangeLanguage(ctx, msg.Code) {
			return fmt.Errorf("locale %q is not configured", msg.Code)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ChangeLanguageCommand]{
		commands.WithLogger[ChangeLanguageCommand](logger),
		commands.WithOperation[ChangeLanguageCommand]("i18n.change_language"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ChangeLanguageHandler{
		inner: commands.NewHandler[ChangeLanguageCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ChangeLanguageCommand].Execute.
func (h *ChangeLanguageHandler) Execute(ctx context.Context, msg ChangeLanguageCommand) error {
	return h.inner.Execute(ctx, msg)
}
