package ports

import (
	"context"

	"folio/internal/domain"
)

// ContentSource loads domain content documents. Implementations degrade
// gracefully: a failed or unparseable load yields an empty document and a
// logged warning, never an error that would take the editor down.
type ContentSource interface {
	// LoadGlobalSettings loads the global settings document.
	LoadGlobalSettings(ctx context.Context) (domain.Document, error)

	// LoadPage loads one page domain's content document.
	LoadPage(ctx context.Context, name domain.Name) (domain.Document, error)

	// LoadAll loads every known domain concurrently. Domains fail
	// independently; a slow or broken domain never blocks the others.
	LoadAll(ctx context.Context) (map[domain.Name]domain.Document, error)
}
