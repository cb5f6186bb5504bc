package contentcmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/naradigital/go-portal/internal/commands"
	"github.com/naradigital/go-portal/internal/herocontent"
	"github.com/naradigital/go-portal/internal/pagecontent"
	"github.com/naradigital/go-portal/pkg/interfaces"
)

const savePageContentMessageType = "portal.content.save"

// SavePageContentCommand requests persistence of the current editor buffer for a page.
type SavePageContentCommand struct {
	PageID  string                   `json:"page_id"`
	Content *herocontent.PageContent `json:"content"`
	Editor  string                   `json:"editor,omitempty"`
}

// Type implements command.Message.
func (SavePageContentCommand) Type() string { return savePageContentMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m SavePageContentCommand) Validate() error {
	errs := validation.Errors{}
	if m.PageID == "" {
		errs["page_id"] = validation.NewError("portal.content.save.page_id_required", "page_id is required")
	}
	if m.Content == nil {
		errs["content"] = validation.NewError("portal.content.save.content_required", "content is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SavePageContentHandler persists page content via the content service using the
// shared command handler foundation.
type SavePageContentHandler struct {
	inner *commands.Handler[SavePageContentCommand]
}

// NewSavePageContentHandler constructs a handler wired to the provided content service.
func NewSavePageContentHandler(service pagecontent.Service, logger interfaces.Logger, opts ...commands.HandlerOption[SavePageContentCommand]) *SavePageContentHandler {
	exec := func(ctx context.Context, msg SavePageContentCommand) error {
		_, err := service.Save(ctx, pagecontent.SaveRequest{
			PageID:  msg.PageID,
			Content: msg.Content,
			Editor:  msg.Editor,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[SavePageContentCommand]{
		commands.WithLogger[SavePageContentCommand](logger),
		commands.WithOperation[SavePageContentCommand]("content.save"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SavePageContentHandler{
		inner: commands.NewHandler[SavePageContentCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SavePageContentCommand].Execute.
func (h *SavePageContentHandler) Execute(ctx context.Context, msg SavePageContentCommand) error {
	return h.inner.Execute(ctx, msg)
}
