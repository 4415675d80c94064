package application

import (
	"context"

	"go.uber.org/zap"

	"folio/internal/domain"
	"folio/internal/ports"
)

// Editor owns the edit sessions for every content domain. Sessions are
// created lazily: the first access loads the seed from the content source
// and overlays any cached working copy.
type Editor struct {
	source   ports.ContentSource
	cache    ports.WorkingCache
	logger   *zap.Logger
	sessions map[domain.Name]*EditSession
}

// NewEditor creates an editor over the given content source. cache may be
// nil to disable working-copy mirroring.
func NewEditor(source ports.ContentSource, cache ports.WorkingCache, logger *zap.Logger) *Editor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Editor{
		source:   source,
		cache:    cache,
		logger:   logger,
		sessions: make(map[domain.Name]*EditSession),
	}
}

// Session returns the edit session for a domain, loading it on first use.
// The freshly loaded document is always the seed; the cache can only
// restore in-progress edits on top of it.
func (e *Editor) Session(ctx context.Context, name domain.Name) (*EditSession, error) {
	if s, ok := e.sessions[name]; ok {
		return s, nil
	}

	var (
		seed domain.Document
		err  error
	)
	if name == domain.Global {
		seed, err = e.source.LoadGlobalSettings(ctx)
	} else {
		seed, err = e.source.LoadPage(ctx, name)
	}
	if err != nil {
		// Sources degrade to empty documents themselves; an error here is
		// unexpected but still must not take the editor down.
		e.logger.Warn("content load failed, editing empty document",
			zap.String("domain", string(name)), zap.Error(err))
		seed = domain.Document{}
	}
	if seed == nil {
		seed = domain.Document{}
	}

	restored := e.restore(name)
	s := NewEditSession(name, seed, restored, e.cache, e.logger)
	e.sessions[name] = s
	return s, nil
}

func (e *Editor) restore(name domain.Name) domain.Document {
	if e.cache == nil {
		return nil
	}
	doc, ok, err := e.cache.Load(name)
	if err != nil {
		e.logger.Warn("failed to read working-copy cache",
			zap.String("domain", string(name)), zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}
	return doc
}

// DomainStatus describes one domain's editing state.
type DomainStatus struct {
	Name  domain.Name
	Dirty bool
}

// Statuses reports the dirty state of every content domain.
func (e *Editor) Statuses(ctx context.Context) ([]DomainStatus, error) {
	statuses := make([]DomainStatus, 0, len(domain.All()))
	for _, name := range domain.All() {
		s, err := e.Session(ctx, name)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, DomainStatus{Name: name, Dirty: s.Dirty()})
	}
	return statuses, nil
}
