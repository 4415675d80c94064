package domain

import (
	"reflect"
	"strconv"
	"strings"
)

// Document is one domain's content: a tree of JSON-compatible values
// (objects, arrays, strings, numbers, booleans). No schema is enforced;
// missing fields are the presentation layer's problem, not ours.
type Document map[string]any

// Clone returns a deep copy of the document. Mutating the copy never
// affects the original, at any depth.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	return cloneValue(map[string]any(d)).(map[string]any)
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[k] = cloneValue(child)
		}
		return out
	case Document:
		return cloneValue(map[string]any(val))
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = cloneValue(child)
		}
		return out
	default:
		// Scalars (string, float64, bool, nil) are immutable.
		return v
	}
}

// Equal reports deep structural equality between two documents.
func (d Document) Equal(other Document) bool {
	return reflect.DeepEqual(map[string]any(d), map[string]any(other))
}

// FieldPath addresses a value inside a document: a sequence of object
// keys and decimal list indices, written in dotted form
// (e.g. "banner.banners.0.title").
type FieldPath []string

// ParsePath splits a dotted path string into its segments.
func ParsePath(s string) FieldPath {
	if s == "" {
		return nil
	}
	return FieldPath(strings.Split(s, "."))
}

func (p FieldPath) String() string {
	return strings.Join(p, ".")
}

// Get returns the value at path, or (nil, false) if any segment is missing.
func (d Document) Get(path FieldPath) (any, bool) {
	var cur any = map[string]any(d)
	for _, seg := range path {
		next, ok := step(cur, seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func step(cur any, seg string) (any, bool) {
	switch node := cur.(type) {
	case map[string]any:
		v, ok := node[seg]
		return v, ok
	case []any:
		idx, err := strconv.Atoi(seg)
		if err != nil || idx < 0 || idx >= len(node) {
			return nil, false
		}
		return node[idx], true
	default:
		return nil, false
	}
}

// Set replaces the value at path, returning true on success. A missing
// intermediate segment makes the whole call a no-op: the editor only
// writes into structure that already exists.
func (d Document) Set(path FieldPath, value any) bool {
	if len(path) == 0 {
		return false
	}
	parent, ok := d.Get(path[:len(path)-1])
	if !ok {
		return false
	}
	last := path[len(path)-1]
	switch node := parent.(type) {
	case map[string]any:
		node[last] = value
		return true
	case []any:
		idx, err := strconv.Atoi(last)
		if err != nil || idx < 0 || idx >= len(node) {
			return false
		}
		node[idx] = value
		return true
	default:
		return false
	}
}

// List returns the array at path, or (nil, false) if the path does not
// resolve to an array.
func (d Document) List(path FieldPath) ([]any, bool) {
	v, ok := d.Get(path)
	if !ok {
		return nil, false
	}
	list, ok := v.([]any)
	return list, ok
}

// SetList replaces the array at path. If the final segment is missing but
// its parent object exists, the list is created there; this is the one
// place the editor is allowed to grow structure, so appending to a not yet
// present list works.
func (d Document) SetList(path FieldPath, list []any) bool {
	if len(path) == 0 {
		return false
	}
	parent, ok := d.Get(path[:len(path)-1])
	if !ok {
		return false
	}
	obj, ok := parent.(map[string]any)
	if !ok {
		return false
	}
	obj[path[len(path)-1]] = list
	return true
}
