// Package httpsource loads content documents from a deployed site over
// HTTP, the same files the site itself fetches at render time.
package httpsource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"folio/internal/domain"
	"folio/internal/ports"
)

// Client implements ports.ContentSource against <base>/data/<file>.
//
// Failure policy: a failed fetch or parse for any single domain is
// logged and substituted with an empty document. Rendering and editing
// degrade to defaults rather than crash.
type Client struct {
	base       string
	hc         *http.Client
	resolver   domain.AssetResolver
	pathFields []string
	logger     *zap.Logger
}

var _ ports.ContentSource = (*Client)(nil)

// New creates a client for the site at baseURL. basePath is the
// deployment base prefix applied to every path-bearing field in loaded
// documents.
func New(baseURL, basePath string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		base:       strings.TrimSuffix(baseURL, "/"),
		hc:         &http.Client{Timeout: 30 * time.Second},
		resolver:   domain.NewAssetResolver(basePath),
		pathFields: domain.DefaultPathFields,
		logger:     logger,
	}
}

// LoadGlobalSettings loads the global settings document.
func (c *Client) LoadGlobalSettings(ctx context.Context) (domain.Document, error) {
	return c.load(ctx, domain.Global), nil
}

// LoadPage loads one page domain's content document.
func (c *Client) LoadPage(ctx context.Context, name domain.Name) (domain.Document, error) {
	return c.load(ctx, name), nil
}

// LoadAll fetches every known domain concurrently. Each fetch fails
// independently; one slow or broken domain neither blocks nor corrupts
// another's result.
func (c *Client) LoadAll(ctx context.Context) (map[domain.Name]domain.Document, error) {
	var mu sync.Mutex
	docs := make(map[domain.Name]domain.Document, len(domain.All()))

	g, ctx := errgroup.WithContext(ctx)
	for _, name := range domain.All() {
		g.Go(func() error {
			doc := c.load(ctx, name)
			mu.Lock()
			docs[name] = doc
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// load fetches and parses one domain, degrading to an empty document on
// any failure.
func (c *Client) load(ctx context.Context, name domain.Name) domain.Document {
	doc, err := c.fetch(ctx, name.FileName())
	if err != nil {
		c.logger.Warn("content fetch failed, using empty document",
			zap.String("domain", string(name)), zap.Error(err))
		return domain.Document{}
	}
	return c.resolver.ResolveTree(doc, c.pathFields)
}

func (c *Client) fetch(ctx context.Context, fileName string) (domain.Document, error) {
	url := c.base + "/data/" + fileName
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}

	var doc domain.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", url, err)
	}
	return doc, nil
}
