package commands

import (
	"errors"

	internalcmd "github.com/naradigital/go-portal/internal/commands"
	contentcmd "github.com/naradigital/go-portal/internal/commands/content"
	i18ncmd "github.com/naradigital/go-portal/internal/commands/i18n"
	"github.com/naradigital/go-portal/internal/di"
	"github.com/naradigital/go-portal/pkg/interfaces"
)

// CommandRegistry records command handlers so hosts can expose them via CLI or cron.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CommandDispatcher subscribes command handlers to a dispatcher implementation.
type CommandDispatcher interface {
	RegisterCommand(handler any) (CommandSubscription, error)
}

// CommandSubscription allows hosts to tear down dispatcher subscriptions.
type CommandSubscription interface {
	Unsubscribe()
}

// RegistrationOptions configures how handlers are registered during construction.
type RegistrationOptions struct {
	Registry       CommandRegistry
	Dispatcher     CommandDispatcher
	LoggerProvider interfaces.LoggerProvider
}

// RegistrationResult captures the constructed command handlers and any
// dispatcher subscriptions. The typed fields let hosts dispatch directly;
// Handlers carries the same set for registry-style integrations.
type RegistrationResult struct {
	SaveContent    *contentcmd.SavePageContentHandler
	ChangeLanguage *i18ncmd.ChangeLanguageHandler

	Handlers      []any
	Subscriptions []CommandSubscription
}

// RegisterContainerCommands builds the command handlers exposed by the provided
// container and optionally registers them with registry/dispatcher integrations.
func RegisterContainerCommands(container *di.Container, opts RegistrationOptions) (*RegistrationResult, error) {
	result := &RegistrationResult{
		Handlers:      make([]any, 0, 2),
		Subscriptions: make([]CommandSubscription, 0, 2),
	}
	if container == nil {
		return result, nil
	}

	provider := opts.LoggerProvider
	if provider == nil {
		provider = container.LoggerProvider()
	}

	var errs error

	register := func(handler any) {
		if handler == nil {
			return
		}
		result.Handlers = append(result.Handlers, handler)

		if opts.Registry != nil {
			if err := opts.Registry.RegisterCommand(handler); err != nil {
				errs = errors.Join(errs, err)
			}
		}

		if opts.Dispatcher != nil {
			subscription, err := opts.Dispatcher.RegisterCommand(handler)
			if err != nil {
				errs = errors.Join(errs, err)
			} else if subscription != nil {
				result.Subscriptions = append(result.Subscriptions, subscription)
			}
		}
	}

	if service := container.ContentService(); service != nil {
		result.SaveContent = contentcmd.NewSavePageContentHandler(service,
			internalcmd.CommandLogger(provider, "content"))
		register(result.SaveContent)
	}

	if manager := container.PreferenceManager(); manager != nil {
		result.ChangeLanguage = i18ncmd.NewChangeLanguageHandler(manager,
			internalcmd.CommandLogger(provider, "i18n"))
		register(result.ChangeLanguage)
	}

	return result, errs
}
