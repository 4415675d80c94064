package domain

import "strings"

// DefaultPathFields lists the field names whose string values are treated
// as asset paths and rewritten against the deployment base prefix when a
// document is loaded.
var DefaultPathFields = []string{
	"image",
	"logo",
	"profileImage",
	"backgroundImage",
	"icon",
	"favicon",
	"thumbnail",
	"resume",
}

// AssetResolver maps content-relative asset paths onto the deployment
// base prefix, so the site can be served from a sub-path.
type AssetResolver struct {
	base string
}

// NewAssetResolver creates a resolver for the given deployment base
// prefix (e.g. "/MadhuPortfolio/"). An empty base resolves paths against
// the site root.
func NewAssetResolver(base string) AssetResolver {
	return AssetResolver{base: base}
}

// Resolve rewrites a single path. Empty paths and absolute http(s) URLs
// pass through unchanged; anything else is joined to the base prefix with
// exactly one separator between them.
func (r AssetResolver) Resolve(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimSuffix(r.base, "/") + "/" + strings.TrimPrefix(path, "/")
}

// ResolveTree walks a document and rewrites every string value whose key
// is one of pathFields, recursing through nested objects and arrays.
// All other values pass through untouched. The input document is not
// modified; a rewritten clone is returned.
func (r AssetResolver) ResolveTree(doc Document, pathFields []string) Document {
	if doc == nil {
		return nil
	}
	known := make(map[string]bool, len(pathFields))
	for _, f := range pathFields {
		known[f] = true
	}
	return r.resolveMap(doc.Clone(), known)
}

func (r AssetResolver) resolveMap(m map[string]any, known map[string]bool) map[string]any {
	for k, v := range m {
		switch val := v.(type) {
		case string:
			if known[k] {
				m[k] = r.Resolve(val)
			}
		case map[string]any:
			m[k] = r.resolveMap(val, known)
		case []any:
			m[k] = r.resolveSlice(val, known)
		}
	}
	return m
}

func (r AssetResolver) resolveSlice(s []any, known map[string]bool) []any {
	for i, v := range s {
		switch val := v.(type) {
		case map[string]any:
			s[i] = r.resolveMap(val, known)
		case []any:
			s[i] = r.resolveSlice(val, known)
		}
	}
	return s
}
