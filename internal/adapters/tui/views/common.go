package views

import (
	"fmt"
	"sort"
	"strconv"

	"folio/internal/domain"
)

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// View switching messages

// SwitchToDomainsMsg returns to the domain list
type SwitchToDomainsMsg struct{}

// SwitchToEditorMsg opens the field editor for one domain
type SwitchToEditorMsg struct {
	Domain domain.Name
}

// SwitchToHelpMsg opens the help view
type SwitchToHelpMsg struct{}

// OpenExportMsg asks the app root to open an exported file in $EDITOR
type OpenExportMsg struct {
	Path string
}

// RowKind classifies a flattened document row
type RowKind int

const (
	RowScalar RowKind = iota
	RowObject
	RowList
	RowListItem
)

// Row is one line of a flattened document: a dotted path plus a preview
// of the value at it.
type Row struct {
	Path    string
	Depth   int
	Kind    RowKind
	Preview string

	// For RowListItem: the list path and index this row belongs to.
	ListPath string
	Index    int
}

// FlattenDocument turns a document into display rows, keys sorted for a
// stable layout. Scalars are editable in place; lists get a header row
// plus one row per item so positional operations have a target.
func FlattenDocument(doc domain.Document) []Row {
	var rows []Row
	flattenMap(map[string]any(doc), "", 0, "", -1, &rows)
	return rows
}

func flattenMap(m map[string]any, prefix string, depth int, listPath string, index int, rows *[]Row) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		flattenValue(m[k], path, depth, listPath, index, rows)
	}
}

func flattenValue(v any, path string, depth int, listPath string, index int, rows *[]Row) {
	switch val := v.(type) {
	case map[string]any:
		*rows = append(*rows, Row{Path: path, Depth: depth, Kind: RowObject, ListPath: listPath, Index: index})
		flattenMap(val, path, depth+1, listPath, index, rows)
	case []any:
		*rows = append(*rows, Row{
			Path:     path,
			Depth:    depth,
			Kind:     RowList,
			Preview:  fmt.Sprintf("[%d items]", len(val)),
			ListPath: path,
		})
		for i, item := range val {
			itemPath := path + "." + strconv.Itoa(i)
			*rows = append(*rows, Row{
				Path:     itemPath,
				Depth:    depth + 1,
				Kind:     RowListItem,
				Preview:  itemPreview(item),
				ListPath: path,
				Index:    i,
			})
			if record, ok := item.(map[string]any); ok {
				flattenMap(record, itemPath, depth+2, path, i, rows)
			}
		}
	default:
		*rows = append(*rows, Row{
			Path:     path,
			Depth:    depth,
			Kind:     RowScalar,
			Preview:  scalarPreview(val),
			ListPath: listPath,
			Index:    index,
		})
	}
}

func itemPreview(v any) string {
	if record, ok := v.(map[string]any); ok {
		for _, key := range []string{"title", "label", "name", "company"} {
			if s, ok := record[key].(string); ok && s != "" {
				return s
			}
		}
		return fmt.Sprintf("{%d fields}", len(record))
	}
	return scalarPreview(v)
}

func scalarPreview(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		if len(val) > 48 {
			return val[:45] + "..."
		}
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}
