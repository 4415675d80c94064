// Package filesystem reads content from a local site checkout and writes
// exported documents back out as files for a human to commit.
package filesystem

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"folio/internal/domain"
	"folio/internal/ports"
)

// Source implements ports.ContentSource against a local data directory,
// typically public/data in the site repository. Same failure policy as
// the HTTP source: per-domain failures degrade to empty documents.
type Source struct {
	dataDir    string
	resolver   domain.AssetResolver
	pathFields []string
	logger     *zap.Logger
}

var _ ports.ContentSource = (*Source)(nil)

// NewSource creates a source over dataDir. basePath is the deployment
// base prefix applied to path-bearing fields.
func NewSource(dataDir, basePath string, logger *zap.Logger) *Source {
	if logger == nil {
		logger = zap.NewNop()
	}
	if strings.HasPrefix(dataDir, "~") {
		home, _ := os.UserHomeDir()
		dataDir = filepath.Join(home, dataDir[1:])
	}
	return &Source{
		dataDir:    dataDir,
		resolver:   domain.NewAssetResolver(basePath),
		pathFields: domain.DefaultPathFields,
		logger:     logger,
	}
}

// LoadGlobalSettings loads the global settings document.
func (s *Source) LoadGlobalSettings(ctx context.Context) (domain.Document, error) {
	return s.load(domain.Global), nil
}

// LoadPage loads one page domain's content document.
func (s *Source) LoadPage(ctx context.Context, name domain.Name) (domain.Document, error) {
	return s.load(name), nil
}

// LoadAll loads every known domain. Reads are local and cheap, so unlike
// the HTTP source there is nothing to parallelize; failures still degrade
// independently per domain.
func (s *Source) LoadAll(ctx context.Context) (map[domain.Name]domain.Document, error) {
	docs := make(map[domain.Name]domain.Document, len(domain.All()))
	for _, name := range domain.All() {
		docs[name] = s.load(name)
	}
	return docs, nil
}

func (s *Source) load(name domain.Name) domain.Document {
	path := filepath.Join(s.dataDir, name.FileName())
	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Warn("content read failed, using empty document",
			zap.String("domain", string(name)), zap.Error(err))
		return domain.Document{}
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("content parse failed, using empty document",
			zap.String("domain", string(name)), zap.Error(err))
		return domain.Document{}
	}
	return s.resolver.ResolveTree(doc, s.pathFields)
}

// ensureDir creates dir if needed.
func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}
