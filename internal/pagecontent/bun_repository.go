package pagecontent

import (
	"context"
	"errors"
	"time"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/naradigital/go-portal/internal/herocontent"
)

// NewPageDocumentRepository builds the generic bun repository for page documents.
func NewPageDocumentRepository(db *bun.DB) repository.Repository[*PageDocument] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*PageDocument]{
		NewRecord: func() *PageDocument { return &PageDocument{} },
		GetID: func(d *PageDocument) uuid.UUID {
			return d.ID
		},
		SetID: func(d *PageDocument, id uuid.UUID) {
			d.ID = id
		},
		GetIdentifier: func() string {
			return "page_id"
		},
		GetIdentifierValue: func(d *PageDocument) string {
			return d.PageID
		},
	})
}

// BunRepository persists page documents using a Bun-backed database.
type BunRepository struct {
	db   *bun.DB
	repo repository.Repository[*PageDocument]
}

// NewBunRepository constructs a repository without caching.
func NewBunRepository(db *bun.DB) *BunRepository {
	return NewBunRepositoryWithCache(db, nil, nil)
}

// NewBunRepositoryWithCache constructs a repository with optional read caching.
func NewBunRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunRepository {
	return &BunRepository{
		db:   db,
		repo: wrapWithCache(NewPageDocumentRepository(db), cacheService, keySerializer),
	}
}

// Get retrieves the raw document for a page id.
func (r *BunRepository) Get(ctx context.Context, pageID string) (herocontent.Document, error) {
	record, err := r.getRecord(ctx, pageID)
	if err != nil {
		return nil, err
	}
	return herocontent.CloneDocument(record.Document), nil
}

// Update replaces an existing page document, failing with NotFoundError when
// the page has never been persisted.
func (r *BunRepository) Update(ctx context.Context, pageID string, doc herocontent.Document) error {
	record, err := r.getRecord(ctx, pageID)
	if err != nil {
		return err
	}

	record.Document = herocontent.CloneDocument(doc)
	record.UpdatedBy = stringField(doc, "updatedBy")
	record.UpdatedAt = time.Now().UTC()

	_, err = r.repo.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns("document", "updated_by", "updated_at"),
	)
	if err != nil {
		return mapRepositoryError(err, pageID)
	}
	return nil
}

// CreateOrMerge upserts the document, deep-merging into any existing row.
func (r *BunRepository) CreateOrMerge(ctx context.Context, pageID string, doc herocontent.Document) error {
	record, err := r.getRecord(ctx, pageID)
	if err == nil {
		merged := mergeDocuments(record.Document, doc)
		record.Document = merged
		record.UpdatedBy = stringField(merged, "updatedBy")
		record.UpdatedAt = time.Now().UTC()
		_, err = r.repo.Update(ctx, record,
			repository.UpdateByID(record.ID.String()),
			repository.UpdateColumns("document", "updated_by", "updated_at"),
		)
		if err != nil {
			return mapRepositoryError(err, pageID)
		}
		return nil
	}
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		return err
	}

	now := time.Now().UTC()
	_, err = r.repo.Create(ctx, &PageDocument{
		ID:        uuid.New(),
		PageID:    pageID,
		Document:  herocontent.CloneDocument(doc),
		UpdatedBy: stringField(doc, "updatedBy"),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return mapRepositoryError(err, pageID)
	}
	return nil
}

// List returns every persisted page id.
func (r *BunRepository) List(ctx context.Context) ([]string, error) {
	records, _, err := r.repo.List(ctx)
	if err != nil {
		return nil, mapRepositoryError(err, "")
	}
	out := make([]string, 0, len(records))
	for _, record := range records {
		out = append(out, record.PageID)
	}
	return out, nil
}

func (r *BunRepository) getRecord(ctx context.Context, pageID string) (*PageDocument, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.page_id = ?", pageID)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, pageID)
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Key: pageID}
	}
	return records[0], nil
}

func mapRepositoryError(err error, key string) error {
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Key: key}
	}
	return err
}

func stringField(doc herocontent.Document, key string) string {
	if value, ok := doc[key].(string); ok {
		return value
	}
	return ""
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
