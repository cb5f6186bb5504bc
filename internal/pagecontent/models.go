package pagecontent

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// PageDocument is the persisted form of a page's content document. The
// document column holds the full raw payload; the store never patches
// individual fields.
type PageDocument struct {
	bun.BaseModel `bun:"table:page_contents,alias:pc"`

	ID        uuid.UUID      `bun:",pk,type:uuid"                 json:"id"`
	PageID    string         `bun:"page_id,notnull"               json:"page_id"`
	Document  map[string]any `bun:"document,type:jsonb,notnull"   json:"document"`
	UpdatedBy string         `bun:"updated_by"                    json:"updated_by,omitempty"`
	CreatedAt time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}
