package pagecontent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-slug"

	"github.com/naradigital/go-portal/internal/herocontent"
	"github.com/naradigital/go-portal/internal/logging"
	"github.com/naradigital/go-portal/pkg/interfaces"
)

var (
	// ErrPageIDRequired indicates a load or save without a page id.
	ErrPageIDRequired = errors.New("pagecontent: page id is required")
	// ErrPageIDInvalid indicates the page id could not be normalized to a slug.
	ErrPageIDInvalid = errors.New("pagecontent: page id is invalid")
	// ErrContentRequired indicates a save without a content document.
	ErrContentRequired = errors.New("pagecontent: content document is required")
	// ErrSaveInFlight rejects a second save for a page while one is running.
	// The guard against the double-click race: one in-flight request per page.
	ErrSaveInFlight = errors.New("pagecontent: save already in progress for this page")
)

// Service exposes the admin content-editing use-cases.
type Service interface {
	Load(ctx context.Context, pageID string) (*herocontent.PageContent, error)
	Save(ctx context.Context, req SaveRequest) (*herocontent.PageContent, error)
	Pages() []PageDefinition
}

// SaveRequest captures a full-document save from the editing surface.
type SaveRequest struct {
	PageID  string
	Content *herocontent.PageContent
	// Editor identifies who saved; defaults to the stock admin identity.
	Editor string
}

// Validate checks the request before any storage interaction.
func (r SaveRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PageID, validation.Required.Error("page id is required")),
		validation.Field(&r.Content, validation.Required.Error("content document is required")),
	)
}

type service struct {
	repo       Repository
	normalizer *herocontent.Normalizer
	pages      []PageDefinition
	logger     interfaces.Logger
	now        func() time.Time

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// Option configures the service.
type Option func(*service)

// WithLogger injects the service logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithPages overrides the editable page registry.
func WithPages(pages []PageDefinition) Option {
	return func(s *service) {
		s.pages = pages
	}
}

// NewService wires the editor service over a document repository.
func NewService(repo Repository, normalizer *herocontent.Normalizer, opts ...Option) Service {
	s := &service{
		repo:       repo,
		normalizer: normalizer,
		pages:      DefaultPages(),
		logger:     logging.NoOp(),
		now:        time.Now,
		inFlight:   make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load fetches and normalizes a page's content. A page that has never been
// saved yields a canonical empty document; nothing is persisted on read,
// documents are created lazily on first save.
func (s *service) Load(ctx context.Context, pageID string) (*herocontent.PageContent, error) {
	id, err := normalizePageID(pageID)
	if err != nil {
		return nil, err
	}

	raw, err := s.repo.Get(ctx, id)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			s.logger.Debug("pagecontent.load.empty", "page_id", id)
			return s.normalizer.Normalize(herocontent.Document{}), nil
		}
		return nil, fmt.Errorf("pagecontent: load %q: %w", id, err)
	}

	return s.normalizer.Normalize(raw), nil
}

// Save persists a full document. The payload's legacy hero fields are
// re-derived from the primary-language slot before writing. An update against
// a nonexistent document is retried once as a create-with-merge; only when
// the fallback also fails does the error surface. The caller's edit buffer is
// never mutated, so a failed save loses nothing.
func (s *service) Save(ctx context.Context, req SaveRequest) (*herocontent.PageContent, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	id, err := normalizePageID(req.PageID)
	if err != nil {
		return nil, err
	}

	if !s.beginSave(id) {
		return nil, ErrSaveInFlight
	}
	defer s.endSave(id)

	payload := s.normalizer.PrepareForPersistence(req.Content, req.Editor, s.now())

	if err := s.repo.Update(ctx, id, payload); err != nil {
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			s.logger.Error("pagecontent.save.failed", "page_id", id, "error", err)
			return nil, fmt.Errorf("pagecontent: save %q: %w", id, err)
		}

		s.logger.Info("pagecontent.save.creating", "page_id", id)
		if err := s.repo.CreateOrMerge(ctx, id, payload); err != nil {
			s.logger.Error("pagecontent.save.create_failed", "page_id", id, "error", err)
			return nil, fmt.Errorf("pagecontent: create %q: %w", id, err)
		}
	}

	s.logger.Info("pagecontent.save.ok", "page_id", id)
	return s.normalizer.Normalize(payload), nil
}

// Pages returns the editable page registry.
func (s *service) Pages() []PageDefinition {
	out := make([]PageDefinition, len(s.pages))
	copy(out, s.pages)
	return out
}

func (s *service) beginSave(pageID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[pageID]; busy {
		return false
	}
	s.inFlight[pageID] = struct{}{}
	return true
}

func (s *service) endSave(pageID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, pageID)
}

func normalizePageID(pageID string) (string, error) {
	if pageID == "" {
		return "", ErrPageIDRequired
	}
	normalized, err := slug.Normalize(pageID)
	if err != nil || normalized == "" {
		return "", fmt.Errorf("%w: %q", ErrPageIDInvalid, pageID)
	}
	return normalized, nil
}
