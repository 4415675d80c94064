package application

import (
	"go.uber.org/zap"

	"folio/internal/domain"
	"folio/internal/ports"
)

// EditSession holds one domain's mutable working copy, seeded from a
// loaded document. Mutations never touch the seed and never alias earlier
// snapshots: every mutation deep-copies the working copy first, which is
// what keeps Dirty and Reset trivially correct.
//
// List items have positional identity only. Removing or reordering an
// item shifts the identity of everything after it, so an index held
// across mutations can silently point at a different record. Callers key
// operations off the session's current state, never off stale indices.
type EditSession struct {
	name    domain.Name
	seed    domain.Document
	working domain.Document
	cache   ports.WorkingCache
	logger  *zap.Logger
}

// NewEditSession seeds a session for one domain. A nil cache disables
// working-copy mirroring; restored, if non-nil, overrides the initial
// working copy (edits that survived a previous session).
func NewEditSession(name domain.Name, seed domain.Document, restored domain.Document, cache ports.WorkingCache, logger *zap.Logger) *EditSession {
	if logger == nil {
		logger = zap.NewNop()
	}
	working := seed.Clone()
	if restored != nil {
		working = restored.Clone()
	}
	return &EditSession{
		name:    name,
		seed:    seed.Clone(),
		working: working,
		cache:   cache,
		logger:  logger,
	}
}

// Name returns the domain this session edits.
func (s *EditSession) Name() domain.Name { return s.name }

// Seed returns a copy of the originally loaded document.
func (s *EditSession) Seed() domain.Document { return s.seed.Clone() }

// Working returns a copy of the current working document.
func (s *EditSession) Working() domain.Document { return s.working.Clone() }

// Dirty reports whether the working copy differs from the seed.
func (s *EditSession) Dirty() bool {
	return !s.working.Equal(s.seed)
}

// SetField replaces the scalar value at a dotted path. A missing
// intermediate segment makes this a silent no-op.
func (s *EditSession) SetField(path string, value any) bool {
	next := s.working.Clone()
	if !next.Set(domain.ParsePath(path), value) {
		return false
	}
	s.commit(next)
	return true
}

// AppendItem appends a record to the list at listPath, creating the list
// if its parent object exists but the list itself does not.
func (s *EditSession) AppendItem(listPath string, record map[string]any) bool {
	next := s.working.Clone()
	path := domain.ParsePath(listPath)
	list, ok := next.List(path)
	if !ok {
		list = []any{}
	}
	list = append(list, domain.Document(record).Clone())
	if !next.SetList(path, list) {
		return false
	}
	s.commit(next)
	return true
}

// RemoveItem removes the record at index from the list at listPath.
// An index outside [0, len) is a no-op, not an error.
func (s *EditSession) RemoveItem(listPath string, index int) bool {
	next := s.working.Clone()
	path := domain.ParsePath(listPath)
	list, ok := next.List(path)
	if !ok || index < 0 || index >= len(list) {
		return false
	}
	list = append(list[:index], list[index+1:]...)
	if !next.SetList(path, list) {
		return false
	}
	s.commit(next)
	return true
}

// UpdateItemField updates one field of the record at index within the
// list at listPath. Out-of-range indices and non-object records no-op.
func (s *EditSession) UpdateItemField(listPath string, index int, field string, value any) bool {
	next := s.working.Clone()
	path := domain.ParsePath(listPath)
	list, ok := next.List(path)
	if !ok || index < 0 || index >= len(list) {
		return false
	}
	record, ok := list[index].(map[string]any)
	if !ok {
		return false
	}
	record[field] = value
	s.commit(next)
	return true
}

// Reset discards all working-copy mutations, restoring the seed, and
// drops the cached mirror.
func (s *EditSession) Reset() {
	s.working = s.seed.Clone()
	if s.cache != nil {
		if err := s.cache.Clear(s.name); err != nil {
			s.logger.Warn("failed to clear working-copy cache",
				zap.String("domain", string(s.name)), zap.Error(err))
		}
	}
}

// commit installs the next working snapshot and mirrors it to the cache.
// The mirror is best-effort: a cache failure is logged and otherwise
// ignored, it never blocks or corrupts the edit itself.
func (s *EditSession) commit(next domain.Document) {
	s.working = next
	if s.cache == nil {
		return
	}
	if err := s.cache.Save(s.name, s.working); err != nil {
		s.logger.Warn("failed to mirror working copy",
			zap.String("domain", string(s.name)), zap.Error(err))
	}
}
