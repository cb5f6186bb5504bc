package imagegen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/naradigital/go-portal/internal/herocontent"
	"github.com/naradigital/go-portal/internal/logging"
	"github.com/naradigital/go-portal/pkg/interfaces"
)

// ErrGeneratorRequired indicates the service was built without a generator.
var ErrGeneratorRequired = errors.New("imagegen: generator is required")

// ErrBlobStoreRequired indicates the service was built without a blob store.
var ErrBlobStoreRequired = errors.New("imagegen: blob store is required")

// GenerateRequest asks for a hero image for one language slot of a document.
type GenerateRequest struct {
	PageID  string
	Locale  string
	Prompt  string
	Content *herocontent.PageContent
}

// Validate checks the request before the external call.
func (r GenerateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PageID, validation.Required.Error("page id is required")),
		validation.Field(&r.Locale, validation.Required.Error("locale is required")),
		validation.Field(&r.Prompt, validation.Required.Error("prompt is required")),
		validation.Field(&r.Content, validation.Required.Error("content document is required")),
	)
}

// Service runs the generate-then-upload round trip and stamps the resulting
// URL into the requested language slot. A failure anywhere leaves the
// document untouched so the editing form keeps its state.
type Service struct {
	generator  Generator
	blobs      interfaces.BlobStore
	normalizer *herocontent.Normalizer
	logger     interfaces.Logger
}

// ServiceOption configures the service.
type ServiceOption func(*Service)

// WithServiceLogger injects the service logger.
func WithServiceLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService wires the image helper.
func NewService(generator Generator, blobs interfaces.BlobStore, normalizer *herocontent.Normalizer, opts ...ServiceOption) (*Service, error) {
	if generator == nil {
		return nil, ErrGeneratorRequired
	}
	if blobs == nil {
		return nil, ErrBlobStoreRequired
	}
	s := &Service{
		generator:  generator,
		blobs:      blobs,
		normalizer: normalizer,
		logger:     logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// GenerateHeroImage generates an image for the prompt, uploads it, sets the
// language slot's image field to the public URL, and returns the URL.
func (s *Service) GenerateHeroImage(ctx context.Context, req GenerateRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	image, err := s.generator.Generate(ctx, req.Prompt)
	if err != nil {
		s.logger.Warn("imagegen.generate.failed", "page_id", req.PageID, "error", err)
		return "", err
	}

	path := fmt.Sprintf("hero/%s/%s-%s%s", req.PageID, req.Locale, uuid.NewString(), extensionFor(image.ContentType))
	url, err := s.blobs.Upload(ctx, path, image.Data, image.ContentType)
	if err != nil {
		s.logger.Warn("imagegen.upload.failed", "page_id", req.PageID, "error", err)
		return "", fmt.Errorf("imagegen: upload: %w", err)
	}

	if err := s.normalizer.UpdateTranslationField(req.Content, req.Locale, herocontent.FieldImage, url); err != nil {
		return "", err
	}

	s.logger.Info("imagegen.generate.ok", "page_id", req.PageID, "locale", req.Locale)
	return url, nil
}

func extensionFor(contentType string) string {
	switch {
	case strings.Contains(contentType, "png"):
		return ".png"
	case strings.Contains(contentType, "webp"):
		return ".webp"
	default:
		return ".jpg"
	}
}
