package pagecontent

import (
	"context"
	"fmt"
	"strings"

	"github.com/naradigital/go-portal/internal/herocontent"
)

// NotFoundError reports a missing page document.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	key := strings.TrimSpace(e.Key)
	if key == "" {
		return "pagecontent: document not found"
	}
	return fmt.Sprintf("pagecontent: document %q not found", key)
}

// Repository is the document-store contract the editor consumes. Update has
// update-only semantics and fails with NotFoundError for absent documents;
// CreateOrMerge is the upsert fallback that deep-merges the payload into any
// existing document, creating it when absent.
type Repository interface {
	Get(ctx context.Context, pageID string) (herocontent.Document, error)
	Update(ctx context.Context, pageID string, doc herocontent.Document) error
	CreateOrMerge(ctx context.Context, pageID string, doc herocontent.Document) error
	List(ctx context.Context) ([]string, error)
}

// mergeDocuments deep-merges src into dst: nested maps merge recursively,
// everything else (lists included) is replaced wholesale. Matches the
// merge-write semantics of the original document store.
func mergeDocuments(dst, src herocontent.Document) herocontent.Document {
	out := herocontent.CloneDocument(dst)
	for key, value := range src {
		if srcMap, ok := value.(map[string]any); ok {
			if dstMap, ok := out[key].(map[string]any); ok {
				out[key] = mergeDocuments(dstMap, srcMap)
				continue
			}
		}
		out[key] = herocontent.CloneDocument(herocontent.Document{key: value})[key]
	}
	return out
}
