package ports

import "folio/internal/domain"

// ExportTarget persists an edited document outside the editing session.
// The shipping implementation writes a pretty-printed JSON file that a
// human commits back to the site repository; the interface exists so a
// real network target could be swapped in without touching mutation logic.
type ExportTarget interface {
	// Persist serializes doc and writes it under fileName, returning the
	// destination (a path or URL) for user feedback.
	Persist(doc domain.Document, fileName string) (string, error)
}
