package ports

import "folio/internal/domain"

// WorkingCache mirrors in-progress working copies, keyed by domain. It is
// best-effort and never authoritative: a fresh load from the content
// source always provides the seed, the cache only restores edits that
// were in flight when the previous session ended.
type WorkingCache interface {
	Save(name domain.Name, doc domain.Document) error

	// Load returns the cached working copy and whether one exists.
	Load(name domain.Name) (domain.Document, bool, error)

	Clear(name domain.Name) error
}
